package domain_test

import (
	"testing"

	"worksync/internal/modules/task/domain"
)

func TestSummarize(t *testing.T) {
	t.Parallel()
	tasks := []domain.Task{
		{Status: domain.StatusPending, CurrentProgress: 0},
		{Status: domain.StatusInProgress, CurrentProgress: 40, TotalTimeSpent: 20},
		{Status: domain.StatusInProgress, CurrentProgress: 25, TotalTimeSpent: 5},
		{Status: domain.StatusCompleted, CurrentProgress: 100, TotalTimeSpent: 35},
	}
	got := domain.Summarize(tasks)
	want := domain.Stats{Total: 4, Pending: 1, Active: 2, Completed: 1, AvgProgress: 41, TotalTimeSpent: 60}
	if got != want {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}
	if empty := domain.Summarize(nil); empty != (domain.Stats{}) {
		t.Fatalf("empty set should be all zero, got %+v", empty)
	}
}

func TestSummarizeRoundsHalfUp(t *testing.T) {
	t.Parallel()
	tasks := []domain.Task{{Status: domain.StatusInProgress, CurrentProgress: 2}, {Status: domain.StatusInProgress, CurrentProgress: 3}}
	if got := domain.Summarize(tasks).AvgProgress; got != 3 {
		t.Fatalf("expected 2.5 to round to 3, got %d", got)
	}
}

func TestFilters(t *testing.T) {
	t.Parallel()
	tasks := []domain.Task{
		{ID: "p", Status: domain.StatusPending},
		{ID: "a", Status: domain.StatusInProgress},
		{ID: "c", Status: domain.StatusCompleted},
	}
	cases := map[string][]string{
		"":          {"p", "a", "c"},
		"all":       {"p", "a", "c"},
		"pending":   {"p"},
		"active":    {"a"},
		"Completed": {"c"},
	}
	for raw, want := range cases {
		f, err := domain.ParseFilter(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		got := f.Apply(tasks)
		if len(got) != len(want) {
			t.Fatalf("filter %q: got %d tasks, want %d", raw, len(got), len(want))
		}
		for i := range want {
			if got[i].ID != want[i] {
				t.Fatalf("filter %q: got %s at %d, want %s", raw, got[i].ID, i, want[i])
			}
		}
	}
	if _, err := domain.ParseFilter("archived"); err == nil {
		t.Fatalf("unknown filter should fail")
	}
}
