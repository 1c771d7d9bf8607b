package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"worksync/internal/modules/account/domain"
	accountout "worksync/internal/modules/account/port/out"
	apperrors "worksync/internal/platform/errors"
	"worksync/internal/platform/id"
)

type AccountService struct {
	idGen    id.Generator
	accounts accountout.AccountStore
	sessions accountout.SessionStore
}

func NewAccountService(idGen id.Generator, accounts accountout.AccountStore, sessions accountout.SessionStore) *AccountService {
	return &AccountService{idGen: idGen, accounts: accounts, sessions: sessions}
}

func (s *AccountService) Current(ctx context.Context) (domain.Account, error) {
	return s.sessions.Load(ctx)
}

// Register appends a new account and signs it in. Email uniqueness is an
// exact, case-sensitive comparison.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (domain.Account, error) {
	if strings.TrimSpace(email) == "" {
		return domain.Account{}, fmt.Errorf("%w: email is required", apperrors.ErrInvalidInput)
	}
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	if domain.FindByEmail(accounts, email) >= 0 {
		return domain.Account{}, apperrors.ErrDuplicateAccount
	}
	account := domain.Account{
		ID:       s.idGen.New(),
		Name:     name,
		Email:    email,
		Avatar:   domain.AvatarURL(email),
		Password: password,
	}
	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}
	if err := s.accounts.SaveAll(ctx, append(accounts, account)); err != nil {
		return domain.Account{}, err
	}
	if err := s.sessions.Save(ctx, account.Public()); err != nil {
		// Without a session the new account would block a retry with the
		// same email, so the accounts collection goes back to what it was.
		if rollbackErr := s.accounts.SaveAll(ctx, accounts); rollbackErr != nil {
			return domain.Account{}, errors.Join(err, fmt.Errorf("roll back account: %w", rollbackErr))
		}
		return domain.Account{}, err
	}
	return account.Public(), nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (domain.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	for _, account := range accounts {
		if account.Matches(email, password) {
			if err := s.sessions.Save(ctx, account.Public()); err != nil {
				return domain.Account{}, err
			}
			return account.Public(), nil
		}
	}
	return domain.Account{}, apperrors.ErrInvalidCredentials
}

func (s *AccountService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}
