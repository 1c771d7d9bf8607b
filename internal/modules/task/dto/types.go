package dto

import "time"

type ListInput struct {
	AccountID string
	// Status is one of all, pending, active, completed; empty means all.
	Status string
}

type CreateInput struct {
	AccountID   string
	Title       string
	Description string
	// StartTime defaults to now when zero.
	StartTime time.Time
	// ExpectedDuration is in minutes and defaults to 60 when zero.
	ExpectedDuration int
}

type EditInput struct {
	TaskID           string
	Title            *string
	Description      *string
	StartTime        *time.Time
	ExpectedDuration *int
}

type AppendUpdateInput struct {
	TaskID     string
	Percentage int
	TimeSpent  int
	Note       string
}

type ExportInput struct {
	AccountID string
	Dir       string
}

type UpdateOutput struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"taskId"`
	Timestamp  time.Time `json:"timestamp"`
	Percentage int       `json:"percentage"`
	TimeSpent  int       `json:"timeSpent"`
	Note       string    `json:"note,omitempty"`
}

type TaskOutput struct {
	ID               string         `json:"id"`
	UserID           string         `json:"userId"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	StartTime        time.Time      `json:"startTime"`
	ExpectedDuration int            `json:"expectedDuration"`
	Status           string         `json:"status"`
	CurrentProgress  int            `json:"currentProgress"`
	TotalTimeSpent   int            `json:"totalTimeSpent"`
	CreatedAt        time.Time      `json:"createdAt"`
	Updates          []UpdateOutput `json:"updates"`
}

type StatsOutput struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Active         int `json:"active"`
	Completed      int `json:"completed"`
	AvgProgress    int `json:"avgProgress"`
	TotalTimeSpent int `json:"totalTimeSpent"`
}

type ExportOutput struct {
	Paths []string
}
