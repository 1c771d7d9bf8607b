package slug_test

import (
	"strings"
	"testing"

	"worksync/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Write Quarterly Report": "write-quarterly-report",
		"  --Fix: bug #42!  ":    "fix-bug-42",
		"":                       "untitled",
		"???":                    "untitled",
	}
	for in, want := range cases {
		if got := slug.Make(in); got != want {
			t.Fatalf("slug.Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeTruncatesLongTitles(t *testing.T) {
	t.Parallel()
	got := slug.Make(strings.Repeat("word ", 30))
	if len(got) > 48 {
		t.Fatalf("expected at most 48 chars, got %d (%s)", len(got), got)
	}
	if strings.HasSuffix(got, "-") {
		t.Fatalf("slug must not end with a dash: %s", got)
	}
}
