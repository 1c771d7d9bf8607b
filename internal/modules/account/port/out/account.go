package out

import (
	"context"

	"worksync/internal/modules/account/domain"
)

// AccountStore reads and replaces the whole accounts collection.
type AccountStore interface {
	List(ctx context.Context) ([]domain.Account, error)
	SaveAll(ctx context.Context, accounts []domain.Account) error
}

// SessionStore holds the single signed-in account. Load returns
// apperrors.ErrNoSession when nobody is signed in.
type SessionStore interface {
	Load(ctx context.Context) (domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
	Clear(ctx context.Context) error
}
