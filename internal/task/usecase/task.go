package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"unified-calendar/internal/model"
	"unified-calendar/internal/task"
	"unified-calendar/internal/task/repository"
)

// List returns all tasks, newest first.
func (u *implUseCase) List(ctx context.Context) ([]model.TaskItem, error) {
	tasks, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Add creates a task from a title.
func (u *implUseCase) Add(ctx context.Context, title string) (model.TaskItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.TaskItem{}, task.ErrEmptyTitle
	}

	t := model.TaskItem{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := u.repo.Insert(ctx, t); err != nil {
		return model.TaskItem{}, fmt.Errorf("failed to add task: %w", err)
	}
	return t, nil
}

// Toggle flips a task's completed flag and returns the updated task.
func (u *implUseCase) Toggle(ctx context.Context, id string) (model.TaskItem, error) {
	t, err := u.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.TaskItem{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.TaskItem{}, fmt.Errorf("failed to load task: %w", err)
	}

	t.Completed = !t.Completed
	if err := u.repo.SetCompleted(ctx, id, t.Completed); err != nil {
		return model.TaskItem{}, fmt.Errorf("failed to toggle task: %w", err)
	}
	return t, nil
}

// Remove deletes a task.
func (u *implUseCase) Remove(ctx context.Context, id string) error {
	err := u.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to remove task: %w", err)
	}
	return nil
}
