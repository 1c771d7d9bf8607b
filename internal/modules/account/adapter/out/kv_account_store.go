package out

import (
	"context"

	"worksync/internal/modules/account/domain"
	accountout "worksync/internal/modules/account/port/out"
	"worksync/internal/platform/kv"
)

type KVAccountStore struct {
	store kv.Store
}

func NewKVAccountStore(store kv.Store) accountout.AccountStore {
	return &KVAccountStore{store: store}
}

func (s *KVAccountStore) List(ctx context.Context) ([]domain.Account, error) {
	return kv.ReadRecords[domain.Account](ctx, s.store, kv.Accounts)
}

func (s *KVAccountStore) SaveAll(ctx context.Context, accounts []domain.Account) error {
	return kv.WriteRecords(ctx, s.store, kv.Accounts, accounts)
}
