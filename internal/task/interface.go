package task

import (
	"context"

	"unified-calendar/internal/model"
)

// UseCase defines the business logic interface for the task list that
// lives alongside the calendar.
type UseCase interface {
	// List returns all tasks, newest first.
	List(ctx context.Context) ([]model.TaskItem, error)

	// Add creates a task from a title.
	Add(ctx context.Context, title string) (model.TaskItem, error)

	// Toggle flips a task's completed flag.
	Toggle(ctx context.Context, id string) (model.TaskItem, error)

	// Remove deletes a task.
	Remove(ctx context.Context, id string) error
}
