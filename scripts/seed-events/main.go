// scripts/seed-events/main.go
//
// Seeds the backend with a spread of local events so the calendar
// filters (upcoming, past, invites) have something to show during
// development.
//
// Usage:
//   go run scripts/seed-events/main.go -token <auth_token> [-base http://localhost:8000]

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"

	"unified-calendar/internal/model"
	"unified-calendar/pkg/calendarapi"
)

func main() {
	base := flag.String("base", "http://localhost:8000", "backend base URL")
	token := flag.String("token", "", "bearer auth token")
	flag.Parse()

	if *token == "" {
		fmt.Println("Usage: go run scripts/seed-events/main.go -token <auth_token>")
		fmt.Println()
		fmt.Println("To get your auth token:")
		fmt.Println("  1. Log in to the app")
		fmt.Println("  2. Check app storage for 'token', or the backend logs after login")
		os.Exit(1)
	}

	client := calendarapi.New(*base, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: *token,
		TokenType:   "Bearer",
	}))

	now := time.Now().UTC()
	events := seedEvents(now)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Printf("Creating %d seed events...", len(events))
	created, failed := 0, 0
	for _, ev := range events {
		if _, err := client.CreateLocalEvent(ctx, ev); err != nil {
			log.Printf("Failed: %s: %v", ev.Title, err)
			failed++
			continue
		}
		log.Printf("Created: %s", ev.Title)
		created++
	}

	log.Printf("Done: %d created, %d failed", created, failed)
	fmt.Println()
	fmt.Println("Check in the app:")
	fmt.Println("  - Upcoming filter: 'Tomorrow', 'Next Week', 'Today's Event'")
	fmt.Println("  - Past filter: 'Last Week', 'Yesterday'")
	fmt.Println("  - Invites filter: only 'Pending Invite' (not 'Accepted Invite')")
}

func seedEvents(now time.Time) []model.CalendarEvent {
	stamp := func(t time.Time) string { return t.Format(time.RFC3339) }
	event := func(title, description string, start time.Time, duration time.Duration) model.CalendarEvent {
		return model.CalendarEvent{
			Title:          title,
			Description:    description,
			Location:       "Seed Location",
			StartTime:      stamp(start),
			EndTime:        stamp(start.Add(duration)),
			CalendarSource: model.SourceLocal,
		}
	}

	pendingInvite := event("Pending Invite - Next Week", "A pending invitation", now.AddDate(0, 0, 5), time.Hour)
	pendingInvite.IsInvite = true
	pendingInvite.InviteStatus = model.InvitePending

	acceptedInvite := event("Accepted Invite - Next Month", "An already-accepted invitation", now.AddDate(0, 0, 30), time.Hour)
	acceptedInvite.IsInvite = true
	acceptedInvite.InviteStatus = model.InviteAccepted

	return []model.CalendarEvent{
		event("Past Event - Last Week", "A past event from last week", now.AddDate(0, 0, -7), time.Hour),
		event("Past Event - Yesterday", "A past event from yesterday", now.AddDate(0, 0, -1), 2*time.Hour),
		event("Upcoming Event - Tomorrow", "An upcoming event tomorrow", now.AddDate(0, 0, 1), time.Hour),
		event("Upcoming Event - Next Week", "An upcoming event next week", now.AddDate(0, 0, 7), 2*time.Hour),
		pendingInvite,
		acceptedInvite,
		event("Today's Event - Future Time", "Today's event at a future time", now.Add(2*time.Hour), time.Hour),
	}
}
