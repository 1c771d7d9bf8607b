package domain

import (
	"fmt"
	"strings"
)

// Filter selects tasks by status the way the dashboard tabs do.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func ParseFilter(raw string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return FilterAll, nil
	case "pending":
		return FilterPending, nil
	case "active", "in_progress", "in-progress":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("unknown status filter %q", raw)
	}
}

func (f Filter) Match(t Task) bool {
	switch f {
	case FilterPending:
		return t.Status == StatusPending
	case FilterActive:
		return t.Status == StatusInProgress
	case FilterCompleted:
		return t.Status == StatusCompleted
	default:
		return true
	}
}

func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Stats is derived from a task list on every read and never stored.
type Stats struct {
	Total          int
	Pending        int
	Active         int
	Completed      int
	AvgProgress    int
	TotalTimeSpent int
}

// Summarize counts tasks per status and averages progress, rounding half up.
func Summarize(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	sum := 0
	for _, t := range tasks {
		switch t.Status {
		case StatusPending:
			s.Pending++
		case StatusInProgress:
			s.Active++
		case StatusCompleted:
			s.Completed++
		}
		sum += t.CurrentProgress
		s.TotalTimeSpent += t.TotalTimeSpent
	}
	if s.Total > 0 {
		s.AvgProgress = (2*sum + s.Total) / (2 * s.Total)
	}
	return s
}
