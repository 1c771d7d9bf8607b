package out

import (
	"context"

	"worksync/internal/modules/task/domain"
)

// TaskStore reads and replaces the whole tasks collection, updates included.
type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, error)
	SaveAll(ctx context.Context, tasks []domain.Task) error
}

// NoteExporter writes a human-readable note for a task and returns its path.
type NoteExporter interface {
	Export(ctx context.Context, dir string, task domain.Task) (string, error)
}
