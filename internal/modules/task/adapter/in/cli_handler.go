package in

import (
	"context"
	"time"

	"worksync/internal/modules/task/dto"
	taskin "worksync/internal/modules/task/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, accountID, status string) ([]dto.TaskOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{AccountID: accountID, Status: status})
}

func (h CLIHandler) Show(ctx context.Context, taskID string) (dto.TaskOutput, error) {
	return h.usecase.Get(ctx, taskID)
}

func (h CLIHandler) Create(ctx context.Context, accountID, title, description string, start time.Time, duration int) (dto.TaskOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{
		AccountID:        accountID,
		Title:            title,
		Description:      description,
		StartTime:        start,
		ExpectedDuration: duration,
	})
}

func (h CLIHandler) Edit(ctx context.Context, input dto.EditInput) (dto.TaskOutput, error) {
	return h.usecase.Edit(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, taskID string) error {
	return h.usecase.Delete(ctx, taskID)
}

func (h CLIHandler) Update(ctx context.Context, taskID string, percentage, minutes int, note string) (dto.TaskOutput, error) {
	return h.usecase.AppendUpdate(ctx, dto.AppendUpdateInput{TaskID: taskID, Percentage: percentage, TimeSpent: minutes, Note: note})
}

func (h CLIHandler) History(ctx context.Context, taskID string) ([]dto.UpdateOutput, error) {
	return h.usecase.History(ctx, taskID)
}

func (h CLIHandler) Stats(ctx context.Context, accountID string) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx, accountID)
}

func (h CLIHandler) Export(ctx context.Context, accountID, dir string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{AccountID: accountID, Dir: dir})
}
