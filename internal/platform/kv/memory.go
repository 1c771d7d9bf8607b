package kv

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu   sync.RWMutex
	data map[Collection][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[Collection][]byte)}
}

func (s *MemoryStore) Read(ctx context.Context, c Collection) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.data[c]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), payload...), nil
}

func (s *MemoryStore) Write(ctx context.Context, c Collection, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[c] = append([]byte(nil), payload...)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, c Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, c)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
