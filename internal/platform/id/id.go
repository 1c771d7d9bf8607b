package id

import (
	"strings"

	"github.com/google/uuid"
)

// Generator creates opaque identifiers for accounts, tasks and updates.
type Generator interface {
	New() string
}

// UUID produces random v4 identifiers without dashes.
type UUID struct{}

func (UUID) New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Short returns the first n characters of an identifier, for display.
func Short(id string, n int) string {
	if n <= 0 || len(id) <= n {
		return id
	}
	return id[:n]
}
