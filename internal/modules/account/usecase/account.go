package usecase

import (
	"context"
	"errors"

	"github.com/hashicorp/go-hclog"

	"worksync/internal/modules/account/domain"
	"worksync/internal/modules/account/dto"
	accountin "worksync/internal/modules/account/port/in"
	"worksync/internal/modules/account/service"
	apperrors "worksync/internal/platform/errors"
	"worksync/internal/platform/latency"
)

type Interactor struct {
	svc     *service.AccountService
	latency latency.Simulator
	log     hclog.Logger
}

func NewInteractor(svc *service.AccountService, sim latency.Simulator, logger hclog.Logger) accountin.Usecase {
	if sim == nil {
		sim = latency.None{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Interactor{svc: svc, latency: sim, log: logger}
}

func (i *Interactor) CurrentSession(ctx context.Context) (dto.AccountOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpCurrentSession); err != nil {
		return dto.AccountOutput{}, err
	}
	account, err := i.svc.Current(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoSession) {
			i.log.Warn("load session failed", "error", err)
		}
		return dto.AccountOutput{}, err
	}
	return toOutput(account), nil
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.AccountOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpRegister); err != nil {
		return dto.AccountOutput{}, err
	}
	account, err := i.svc.Register(ctx, input.Name, input.Email, input.Password)
	if err != nil {
		i.log.Warn("register failed", "email", input.Email, "error", err)
		return dto.AccountOutput{}, err
	}
	i.log.Info("account registered", "account_id", account.ID)
	return toOutput(account), nil
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.AccountOutput, error) {
	if err := i.latency.Wait(ctx, latency.OpLogin); err != nil {
		return dto.AccountOutput{}, err
	}
	account, err := i.svc.Login(ctx, input.Email, input.Password)
	if err != nil {
		i.log.Warn("login failed", "email", input.Email, "error", err)
		return dto.AccountOutput{}, err
	}
	i.log.Info("signed in", "account_id", account.ID)
	return toOutput(account), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	if err := i.latency.Wait(ctx, latency.OpLogout); err != nil {
		return err
	}
	if err := i.svc.Logout(ctx); err != nil {
		i.log.Warn("logout failed", "error", err)
		return err
	}
	i.log.Debug("signed out")
	return nil
}

func toOutput(a domain.Account) dto.AccountOutput {
	return dto.AccountOutput{ID: a.ID, Name: a.Name, Email: a.Email, Avatar: a.Avatar}
}
