package usecase

import (
	"unified-calendar/internal/task/repository"
	pkgLog "unified-calendar/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TaskRepository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
