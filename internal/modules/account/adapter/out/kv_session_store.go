package out

import (
	"context"

	"worksync/internal/modules/account/domain"
	accountout "worksync/internal/modules/account/port/out"
	apperrors "worksync/internal/platform/errors"
	"worksync/internal/platform/kv"
)

type KVSessionStore struct {
	store kv.Store
}

func NewKVSessionStore(store kv.Store) accountout.SessionStore {
	return &KVSessionStore{store: store}
}

func (s *KVSessionStore) Load(ctx context.Context) (domain.Account, error) {
	account, ok, err := kv.ReadRecord[domain.Account](ctx, s.store, kv.Session)
	if err != nil {
		return domain.Account{}, err
	}
	if !ok || account.ID == "" {
		return domain.Account{}, apperrors.ErrNoSession
	}
	return account, nil
}

// Save always persists the public shape; the secret never reaches the session.
func (s *KVSessionStore) Save(ctx context.Context, account domain.Account) error {
	return kv.WriteRecord(ctx, s.store, kv.Session, account.Public())
}

func (s *KVSessionStore) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, kv.Session)
}
