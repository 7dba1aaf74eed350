package repository

import (
	"context"
	"errors"

	"unified-calendar/internal/model"
)

// ErrNotFound is returned when a task id has no row.
var ErrNotFound = errors.New("task not found in repository")

// TaskRepository is the persistence interface for the task list.
type TaskRepository interface {
	List(ctx context.Context) ([]model.TaskItem, error)
	Get(ctx context.Context, id string) (model.TaskItem, error)
	Insert(ctx context.Context, t model.TaskItem) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}
