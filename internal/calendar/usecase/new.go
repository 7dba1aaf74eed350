package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"unified-calendar/internal/calendar"
	"unified-calendar/internal/calendar/scheduler"
	"unified-calendar/internal/calendar/state"
	"unified-calendar/pkg/calendarapi"
	pkgLog "unified-calendar/pkg/log"
)

// lastGoodCacheSize bounds the per-source-filter response cache used
// for graceful degradation when the backend is unreachable.
const lastGoodCacheSize = 8

type implUseCase struct {
	l     pkgLog.Logger
	api   calendar.Backend
	state *state.Container
	sched *scheduler.Scheduler

	// lastGood keeps the most recent successful events response per
	// source filter, served when a refresh fetch fails.
	lastGood *lru.Cache[string, *calendarapi.EventsResponse]
}

// New creates a new calendar UseCase instance.
func New(l pkgLog.Logger, api calendar.Backend, st *state.Container) *implUseCase {
	cache, err := lru.New[string, *calendarapi.EventsResponse](lastGoodCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}

	uc := &implUseCase{
		l:        l,
		api:      api,
		state:    st,
		lastGood: cache,
	}
	uc.sched = scheduler.New(l, uc.Refresh)
	return uc
}
