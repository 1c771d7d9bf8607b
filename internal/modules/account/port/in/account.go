package in

import (
	"context"

	"worksync/internal/modules/account/dto"
)

type Usecase interface {
	CurrentSession(ctx context.Context) (dto.AccountOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.AccountOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.AccountOutput, error)
	Logout(ctx context.Context) error
}
