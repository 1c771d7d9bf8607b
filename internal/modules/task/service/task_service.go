package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"worksync/internal/modules/task/domain"
	taskout "worksync/internal/modules/task/port/out"
	"worksync/internal/platform/clock"
	apperrors "worksync/internal/platform/errors"
	"worksync/internal/platform/id"
)

// Draft holds the fields a caller may supply when creating a task. Zero
// values select the defaults: empty text, start now, 60 minutes.
type Draft struct {
	Title            string
	Description      string
	StartTime        time.Time
	ExpectedDuration int
}

// TaskService applies every mutation as one read of the tasks collection,
// one in-memory change and one write of the whole collection. Validation and
// lookups happen before the write, so a failed call leaves storage untouched.
type TaskService struct {
	clock    clock.Clock
	idGen    id.Generator
	store    taskout.TaskStore
	exporter taskout.NoteExporter
}

func NewTaskService(clock clock.Clock, idGen id.Generator, store taskout.TaskStore, exporter taskout.NoteExporter) *TaskService {
	return &TaskService{clock: clock, idGen: idGen, store: store, exporter: exporter}
}

func (s *TaskService) List(ctx context.Context, accountID string, filter domain.Filter) ([]domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(domain.OwnedBy(tasks, accountID)), nil
}

func (s *TaskService) Get(ctx context.Context, taskID string) (domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	idx := domain.IndexByID(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, apperrors.ErrTaskNotFound
	}
	return tasks[idx], nil
}

func (s *TaskService) Create(ctx context.Context, accountID string, draft Draft) (domain.Task, error) {
	if strings.TrimSpace(accountID) == "" {
		return domain.Task{}, fmt.Errorf("%w: account id is required", apperrors.ErrInvalidInput)
	}
	if draft.ExpectedDuration < 0 {
		return domain.Task{}, fmt.Errorf("%w: expected duration must be positive, got %d", apperrors.ErrInvalidInput, draft.ExpectedDuration)
	}
	now := s.clock.Now()
	task := domain.Task{
		ID:               s.idGen.New(),
		UserID:           accountID,
		Title:            draft.Title,
		Description:      draft.Description,
		StartTime:        draft.StartTime,
		ExpectedDuration: draft.ExpectedDuration,
		Status:           domain.StatusPending,
		CurrentProgress:  0,
		TotalTimeSpent:   0,
		CreatedAt:        now,
		Updates:          []domain.Update{},
	}
	if task.StartTime.IsZero() {
		task.StartTime = now
	}
	if task.ExpectedDuration == 0 {
		task.ExpectedDuration = domain.DefaultDuration
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.store.SaveAll(ctx, append(tasks, task)); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) Edit(ctx context.Context, taskID string, patch domain.Patch) (domain.Task, error) {
	if err := patch.Validate(); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	idx := domain.IndexByID(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, apperrors.ErrTaskNotFound
	}
	tasks[idx].Apply(patch)
	if err := s.store.SaveAll(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[idx], nil
}

// Delete removes the task and its updates. An unknown id is not an error.
func (s *TaskService) Delete(ctx context.Context, taskID string) (bool, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}
	idx := domain.IndexByID(tasks, taskID)
	if idx < 0 {
		return false, nil
	}
	kept := append(tasks[:idx:idx], tasks[idx+1:]...)
	if err := s.store.SaveAll(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (s *TaskService) AppendUpdate(ctx context.Context, taskID string, percentage, minutes int, note string) (domain.Task, error) {
	if err := domain.ValidateUpdate(percentage, minutes); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	idx := domain.IndexByID(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, apperrors.ErrTaskNotFound
	}
	tasks[idx].Record(domain.Update{
		ID:         s.idGen.New(),
		TaskID:     taskID,
		Timestamp:  s.clock.Now(),
		Percentage: percentage,
		TimeSpent:  minutes,
		Note:       note,
	})
	if err := s.store.SaveAll(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[idx], nil
}

func (s *TaskService) Stats(ctx context.Context, accountID string) (domain.Stats, error) {
	tasks, err := s.List(ctx, accountID, domain.FilterAll)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Summarize(tasks), nil
}

func (s *TaskService) Export(ctx context.Context, accountID, dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: export directory is required", apperrors.ErrInvalidInput)
	}
	if s.exporter == nil {
		return nil, fmt.Errorf("note exporter is not configured")
	}
	tasks, err := s.List(ctx, accountID, domain.FilterAll)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(tasks))
	for _, task := range tasks {
		path, err := s.exporter.Export(ctx, dir, task)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
