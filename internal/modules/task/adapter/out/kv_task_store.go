package out

import (
	"context"
	"fmt"
	"time"

	"worksync/internal/modules/task/domain"
	taskout "worksync/internal/modules/task/port/out"
	"worksync/internal/platform/kv"
)

// taskRecord is the stored shape of a task: camelCase keys, RFC 3339 start
// time and millisecond creation/update timestamps.
type taskRecord struct {
	ID               string         `json:"id"`
	UserID           string         `json:"userId"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	StartTime        string         `json:"startTime"`
	ExpectedDuration int            `json:"expectedDuration"`
	Status           string         `json:"status"`
	CurrentProgress  int            `json:"currentProgress"`
	TotalTimeSpent   int            `json:"totalTimeSpent"`
	CreatedAt        int64          `json:"createdAt"`
	Updates          []updateRecord `json:"updates"`
}

type updateRecord struct {
	ID         string `json:"id"`
	TaskID     string `json:"taskId"`
	Timestamp  int64  `json:"timestamp"`
	Percentage int    `json:"percentage"`
	TimeSpent  int    `json:"timeSpent"`
	Note       string `json:"note"`
}

type KVTaskStore struct {
	store kv.Store
}

func NewKVTaskStore(store kv.Store) taskout.TaskStore {
	return &KVTaskStore{store: store}
}

func (s *KVTaskStore) Load(ctx context.Context) ([]domain.Task, error) {
	records, err := kv.ReadRecords[taskRecord](ctx, s.store, kv.Tasks)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(records))
	for _, r := range records {
		task, err := fromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("decode task %s: %w", r.ID, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *KVTaskStore) SaveAll(ctx context.Context, tasks []domain.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}
	return kv.WriteRecords(ctx, s.store, kv.Tasks, records)
}

func toRecord(t domain.Task) taskRecord {
	updates := make([]updateRecord, 0, len(t.Updates))
	for _, u := range t.Updates {
		updates = append(updates, updateRecord{
			ID:         u.ID,
			TaskID:     u.TaskID,
			Timestamp:  u.Timestamp.UnixMilli(),
			Percentage: u.Percentage,
			TimeSpent:  u.TimeSpent,
			Note:       u.Note,
		})
	}
	return taskRecord{
		ID:               t.ID,
		UserID:           t.UserID,
		Title:            t.Title,
		Description:      t.Description,
		StartTime:        t.StartTime.UTC().Format(time.RFC3339Nano),
		ExpectedDuration: t.ExpectedDuration,
		Status:           string(t.Status),
		CurrentProgress:  t.CurrentProgress,
		TotalTimeSpent:   t.TotalTimeSpent,
		CreatedAt:        t.CreatedAt.UnixMilli(),
		Updates:          updates,
	}
}

func fromRecord(r taskRecord) (domain.Task, error) {
	start, err := time.Parse(time.RFC3339Nano, r.StartTime)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parse start time %q: %w", r.StartTime, err)
	}
	status := domain.Status(r.Status)
	if err := status.Validate(); err != nil {
		return domain.Task{}, err
	}
	updates := make([]domain.Update, 0, len(r.Updates))
	for _, u := range r.Updates {
		updates = append(updates, domain.Update{
			ID:         u.ID,
			TaskID:     u.TaskID,
			Timestamp:  time.UnixMilli(u.Timestamp).UTC(),
			Percentage: u.Percentage,
			TimeSpent:  u.TimeSpent,
			Note:       u.Note,
		})
	}
	return domain.Task{
		ID:               r.ID,
		UserID:           r.UserID,
		Title:            r.Title,
		Description:      r.Description,
		StartTime:        start.UTC(),
		ExpectedDuration: r.ExpectedDuration,
		Status:           status,
		CurrentProgress:  r.CurrentProgress,
		TotalTimeSpent:   r.TotalTimeSpent,
		CreatedAt:        time.UnixMilli(r.CreatedAt).UTC(),
		Updates:          updates,
	}, nil
}
