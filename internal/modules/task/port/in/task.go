package in

import (
	"context"

	"worksync/internal/modules/task/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) ([]dto.TaskOutput, error)
	Get(ctx context.Context, taskID string) (dto.TaskOutput, error)
	Create(ctx context.Context, input dto.CreateInput) (dto.TaskOutput, error)
	Edit(ctx context.Context, input dto.EditInput) (dto.TaskOutput, error)
	Delete(ctx context.Context, taskID string) error
	AppendUpdate(ctx context.Context, input dto.AppendUpdateInput) (dto.TaskOutput, error)
	History(ctx context.Context, taskID string) ([]dto.UpdateOutput, error)
	Stats(ctx context.Context, accountID string) (dto.StatsOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
