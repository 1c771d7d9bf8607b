package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// DefaultDuration is the expected duration, in minutes, of a task created without one.
const DefaultDuration = 60

// Label is the lower-case name shown to users.
func (s Status) Label() string {
	return strings.ToLower(string(s))
}

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("unsupported status %q", string(s))
	}
}

// DeriveStatus maps the latest logged percentage to a status. It is a pure
// function of that percentage: a lower later value moves the task back down.
func DeriveStatus(percentage int) Status {
	switch {
	case percentage >= 100:
		return StatusCompleted
	case percentage > 0:
		return StatusInProgress
	default:
		return StatusPending
	}
}

type Update struct {
	ID         string
	TaskID     string
	Timestamp  time.Time
	Percentage int
	TimeSpent  int
	Note       string
}

type Task struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	StartTime        time.Time
	ExpectedDuration int
	Status           Status
	CurrentProgress  int
	TotalTimeSpent   int
	CreatedAt        time.Time
	Updates          []Update
}

// Patch carries the user-editable fields of a task; nil fields are left as is.
type Patch struct {
	Title            *string
	Description      *string
	StartTime        *time.Time
	ExpectedDuration *int
}

func (p Patch) Validate() error {
	if p.ExpectedDuration != nil && *p.ExpectedDuration <= 0 {
		return fmt.Errorf("expected duration must be positive, got %d", *p.ExpectedDuration)
	}
	return nil
}

// Apply overwrites the supplied fields. Status, progress, time spent and the
// update log are never touched by an edit.
func (t *Task) Apply(p Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.StartTime != nil {
		t.StartTime = *p.StartTime
	}
	if p.ExpectedDuration != nil {
		t.ExpectedDuration = *p.ExpectedDuration
	}
}

// ValidateUpdate checks the bounds of a progress entry: percentage in
// [0,100] and a positive number of minutes.
func ValidateUpdate(percentage, minutes int) error {
	if percentage < 0 || percentage > 100 {
		return fmt.Errorf("percentage must be between 0 and 100, got %d", percentage)
	}
	if minutes <= 0 {
		return fmt.Errorf("time spent must be positive, got %d", minutes)
	}
	return nil
}

// Record appends u and recomputes progress, cumulative time and status.
func (t *Task) Record(u Update) {
	t.Updates = append(t.Updates, u)
	t.CurrentProgress = u.Percentage
	t.TotalTimeSpent += u.TimeSpent
	t.Status = DeriveStatus(u.Percentage)
}

// History returns the update log newest first.
func (t Task) History() []Update {
	out := slices.Clone(t.Updates)
	slices.Reverse(out)
	return out
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.UserID) == "" {
		return fmt.Errorf("owner is required")
	}
	if t.ExpectedDuration <= 0 {
		return fmt.Errorf("expected duration must be positive, got %d", t.ExpectedDuration)
	}
	if err := t.Status.Validate(); err != nil {
		return err
	}
	if t.Status != DeriveStatus(t.CurrentProgress) {
		return fmt.Errorf("status %s does not match progress %d", t.Status, t.CurrentProgress)
	}
	return nil
}

// IndexByID returns the position of the task with id, or -1.
func IndexByID(tasks []Task, id string) int {
	return slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
}

// OwnedBy returns the tasks of userID, most recently created first. Tasks
// created in the same instant keep reverse insertion order, so the later
// append still lists first.
func OwnedBy(tasks []Task, userID string) []Task {
	out := make([]Task, 0, len(tasks))
	for i := len(tasks) - 1; i >= 0; i-- {
		if tasks[i].UserID == userID {
			out = append(out, tasks[i])
		}
	}
	slices.SortStableFunc(out, func(a, b Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
