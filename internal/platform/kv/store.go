// Package kv is the local key-value namespace WorkSync persists into. Each
// collection is a single JSON payload that is always read and written whole.
package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "worksync/internal/platform/errors"
)

type Collection string

const (
	Accounts Collection = "worksync_users"
	Tasks    Collection = "worksync_tasks"
	Session  Collection = "worksync_session"
)

// Store reads and replaces whole collections. Read returns a nil payload when
// the collection does not exist. Remove of a missing collection is not an error.
type Store interface {
	Read(ctx context.Context, c Collection) ([]byte, error)
	Write(ctx context.Context, c Collection, payload []byte) error
	Remove(ctx context.Context, c Collection) error
	Close() error
}

// ReadRecords decodes a collection as a JSON array. Absent, empty and null
// payloads are an empty sequence; anything else that does not decode is ErrCorrupt.
func ReadRecords[T any](ctx context.Context, s Store, c Collection) ([]T, error) {
	payload, err := s.Read(ctx, c)
	if err != nil {
		return nil, err
	}
	if isBlank(payload) {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", c, apperrors.ErrCorrupt, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func WriteRecords[T any](ctx context.Context, s Store, c Collection, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	return s.Write(ctx, c, payload)
}

// ReadRecord decodes a single-record collection. ok is false when it is absent.
func ReadRecord[T any](ctx context.Context, s Store, c Collection) (record T, ok bool, err error) {
	payload, err := s.Read(ctx, c)
	if err != nil {
		return record, false, err
	}
	if isBlank(payload) {
		return record, false, nil
	}
	if err := json.Unmarshal(payload, &record); err != nil {
		return record, false, fmt.Errorf("decode %s: %w: %v", c, apperrors.ErrCorrupt, err)
	}
	return record, true, nil
}

func WriteRecord[T any](ctx context.Context, s Store, c Collection, record T) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	return s.Write(ctx, c, payload)
}

func isBlank(payload []byte) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// ioError tags a backend failure with ErrStorage. Cancellation passes through
// untagged so callers can tell it apart from a broken medium.
func ioError(op string, c Collection, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", op, c, err)
	}
	return fmt.Errorf("%s %s: %w: %w", op, c, apperrors.ErrStorage, err)
}
