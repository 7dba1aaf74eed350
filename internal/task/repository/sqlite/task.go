package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"unified-calendar/internal/model"
	"unified-calendar/internal/task/repository"
)

// List returns all tasks, newest first.
func (r *implRepository) List(ctx context.Context) ([]model.TaskItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, completed, created_at FROM tasks ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.TaskItem
	for rows.Next() {
		var (
			t         model.TaskItem
			completed int
		)
		if err := rows.Scan(&t.ID, &t.Title, &completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		t.Completed = completed != 0
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// Get returns one task by id.
func (r *implRepository) Get(ctx context.Context, id string) (model.TaskItem, error) {
	var (
		t         model.TaskItem
		completed int
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, completed, created_at FROM tasks WHERE id = ?`, id).
		Scan(&t.ID, &t.Title, &completed, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TaskItem{}, repository.ErrNotFound
	}
	if err != nil {
		return model.TaskItem{}, fmt.Errorf("failed to read task %q: %w", id, err)
	}
	t.Completed = completed != 0
	return t, nil
}

// Insert stores a new task.
func (r *implRepository) Insert(ctx context.Context, t model.TaskItem) error {
	completed := 0
	if t.Completed {
		completed = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, completed, created_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.Title, completed, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// SetCompleted updates one task's completed flag.
func (r *implRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	value := 0
	if completed {
		value = 1
	}
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = ? WHERE id = ?`, value, id)
	if err != nil {
		return fmt.Errorf("failed to update task %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update of task %q: %w", id, err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes one task.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete of task %q: %w", id, err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
