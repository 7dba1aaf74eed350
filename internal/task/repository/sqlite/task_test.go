package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"unified-calendar/internal/model"
	"unified-calendar/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

func openRepo(t *testing.T) *implRepository {
	t.Helper()
	repo, err := New(&mockLogger{}, filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("insert and list newest first", func(t *testing.T) {
		repo := openRepo(t)

		tasks := []model.TaskItem{
			{ID: "t1", Title: "Old", CreatedAt: "2024-01-01T10:00:00Z"},
			{ID: "t2", Title: "New", CreatedAt: "2024-01-02T10:00:00Z"},
		}
		for _, task := range tasks {
			if err := repo.Insert(ctx, task); err != nil {
				t.Fatalf("insert: %v", err)
			}
		}

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 || got[0].ID != "t2" || got[1].ID != "t1" {
			t.Errorf("expected newest first, got %+v", got)
		}
	})

	t.Run("get", func(t *testing.T) {
		repo := openRepo(t)

		task := model.TaskItem{ID: "t1", Title: "Buy milk", CreatedAt: "2024-01-01T10:00:00Z"}
		if err := repo.Insert(ctx, task); err != nil {
			t.Fatalf("insert: %v", err)
		}

		got, err := repo.Get(ctx, "t1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Title != "Buy milk" || got.Completed {
			t.Errorf("unexpected task: %+v", got)
		}

		if _, err := repo.Get(ctx, "ghost"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("set completed", func(t *testing.T) {
		repo := openRepo(t)

		if err := repo.Insert(ctx, model.TaskItem{ID: "t1", Title: "Task", CreatedAt: "2024-01-01T10:00:00Z"}); err != nil {
			t.Fatalf("insert: %v", err)
		}

		if err := repo.SetCompleted(ctx, "t1", true); err != nil {
			t.Fatalf("set completed: %v", err)
		}
		got, _ := repo.Get(ctx, "t1")
		if !got.Completed {
			t.Error("expected completed")
		}

		if err := repo.SetCompleted(ctx, "ghost", true); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		repo := openRepo(t)

		if err := repo.Insert(ctx, model.TaskItem{ID: "t1", Title: "Task", CreatedAt: "2024-01-01T10:00:00Z"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if err := repo.Delete(ctx, "t1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := repo.Get(ctx, "t1"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected task gone, got %v", err)
		}
		if err := repo.Delete(ctx, "t1"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound for second delete, got %v", err)
		}
	})
}
