package id_test

import (
	"testing"

	"worksync/internal/platform/id"
)

func TestUUIDGeneratesDistinctIdentifiers(t *testing.T) {
	t.Parallel()
	gen := id.UUID{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		v := gen.New()
		if len(v) != 32 {
			t.Fatalf("expected 32 hex chars, got %q", v)
		}
		if seen[v] {
			t.Fatalf("duplicate id %s", v)
		}
		seen[v] = true
	}
}

func TestShort(t *testing.T) {
	t.Parallel()
	if got := id.Short("abcdef", 4); got != "abcd" {
		t.Fatalf("expected abcd, got %s", got)
	}
	if got := id.Short("ab", 4); got != "ab" {
		t.Fatalf("expected ab, got %s", got)
	}
	if got := id.Short("abc", 0); got != "abc" {
		t.Fatalf("expected untouched id, got %s", got)
	}
}
