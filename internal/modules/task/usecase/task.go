package usecase

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"worksync/internal/modules/task/domain"
	"worksync/internal/modules/task/dto"
	taskin "worksync/internal/modules/task/port/in"
	"worksync/internal/modules/task/service"
	apperrors "worksync/internal/platform/errors"
	"worksync/internal/platform/latency"
)

type Interactor struct {
	svc     *service.TaskService
	latency latency.Simulator
	log     hclog.Logger
}

func NewInteractor(svc *service.TaskService, sim latency.Simulator, logger hclog.Logger) taskin.Usecase {
	if sim == nil {
		sim = latency.None{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Interactor{svc: svc, latency: sim, log: logger}
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.TaskOutput, error) {
	filter, err := domain.ParseFilter(input.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := i.latency.Wait(ctx, latency.OpListTasks); err != nil {
		return nil, err
	}
	tasks, err := i.svc.List(ctx, input.AccountID, filter)
	if err != nil {
		i.log.Warn("list tasks failed", "account_id", input.AccountID, "error", err)
		return nil, err
	}
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toOutput(t))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, taskID string) (dto.TaskOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpListTasks); err != nil {
		return dto.TaskOutput{}, err
	}
	task, err := i.svc.Get(ctx, taskID)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.TaskOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpCreateTask); err != nil {
		return dto.TaskOutput{}, err
	}
	task, err := i.svc.Create(ctx, input.AccountID, service.Draft{
		Title:            input.Title,
		Description:      input.Description,
		StartTime:        input.StartTime,
		ExpectedDuration: input.ExpectedDuration,
	})
	if err != nil {
		i.log.Warn("create task failed", "account_id", input.AccountID, "error", err)
		return dto.TaskOutput{}, err
	}
	i.log.Info("task created", "task_id", task.ID, "account_id", task.UserID)
	return toOutput(task), nil
}

func (i *Interactor) Edit(ctx context.Context, input dto.EditInput) (dto.TaskOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpEditTask); err != nil {
		return dto.TaskOutput{}, err
	}
	task, err := i.svc.Edit(ctx, input.TaskID, domain.Patch{
		Title:            input.Title,
		Description:      input.Description,
		StartTime:        input.StartTime,
		ExpectedDuration: input.ExpectedDuration,
	})
	if err != nil {
		i.log.Warn("edit task failed", "task_id", input.TaskID, "error", err)
		return dto.TaskOutput{}, err
	}
	i.log.Info("task edited", "task_id", task.ID)
	return toOutput(task), nil
}

func (i *Interactor) Delete(ctx context.Context, taskID string) error {
	if err := i.latency.Wait(ctx, latency.OpDeleteTask); err != nil {
		return err
	}
	removed, err := i.svc.Delete(ctx, taskID)
	if err != nil {
		i.log.Warn("delete task failed", "task_id", taskID, "error", err)
		return err
	}
	if removed {
		i.log.Info("task deleted", "task_id", taskID)
	} else {
		i.log.Debug("delete of unknown task ignored", "task_id", taskID)
	}
	return nil
}

func (i *Interactor) AppendUpdate(ctx context.Context, input dto.AppendUpdateInput) (dto.TaskOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpAppendUpdate); err != nil {
		return dto.TaskOutput{}, err
	}
	task, err := i.svc.AppendUpdate(ctx, input.TaskID, input.Percentage, input.TimeSpent, input.Note)
	if err != nil {
		i.log.Warn("append update failed", "task_id", input.TaskID, "error", err)
		return dto.TaskOutput{}, err
	}
	i.log.Info("progress logged", "task_id", task.ID, "progress", task.CurrentProgress, "status", task.Status.Label(), "time_spent", task.TotalTimeSpent)
	return toOutput(task), nil
}

func (i *Interactor) History(ctx context.Context, taskID string) ([]dto.UpdateOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpListTasks); err != nil {
		return nil, err
	}
	task, err := i.svc.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return toUpdateOutputs(task.History()), nil
}

func (i *Interactor) Stats(ctx context.Context, accountID string) (dto.StatsOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpListTasks); err != nil {
		return dto.StatsOutput{}, err
	}
	stats, err := i.svc.Stats(ctx, accountID)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{
		Total:          stats.Total,
		Pending:        stats.Pending,
		Active:         stats.Active,
		Completed:      stats.Completed,
		AvgProgress:    stats.AvgProgress,
		TotalTimeSpent: stats.TotalTimeSpent,
	}, nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpListTasks); err != nil {
		return dto.ExportOutput{}, err
	}
	paths, err := i.svc.Export(ctx, input.AccountID, input.Dir)
	if err != nil {
		i.log.Warn("export failed", "account_id", input.AccountID, "dir", input.Dir, "error", err)
		return dto.ExportOutput{Paths: paths}, err
	}
	i.log.Info("tasks exported", "account_id", input.AccountID, "count", len(paths))
	return dto.ExportOutput{Paths: paths}, nil
}

func toOutput(t domain.Task) dto.TaskOutput {
	return dto.TaskOutput{
		ID:               t.ID,
		UserID:           t.UserID,
		Title:            t.Title,
		Description:      t.Description,
		StartTime:        t.StartTime,
		ExpectedDuration: t.ExpectedDuration,
		Status:           t.Status.Label(),
		CurrentProgress:  t.CurrentProgress,
		TotalTimeSpent:   t.TotalTimeSpent,
		CreatedAt:        t.CreatedAt,
		Updates:          toUpdateOutputs(t.Updates),
	}
}

func toUpdateOutputs(updates []domain.Update) []dto.UpdateOutput {
	out := make([]dto.UpdateOutput, 0, len(updates))
	for _, u := range updates {
		out = append(out, dto.UpdateOutput{
			ID:         u.ID,
			TaskID:     u.TaskID,
			Timestamp:  u.Timestamp,
			Percentage: u.Percentage,
			TimeSpent:  u.TimeSpent,
			Note:       u.Note,
		})
	}
	return out
}
