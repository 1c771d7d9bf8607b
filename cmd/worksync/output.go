package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"worksync/internal/modules/task/dto"
	"worksync/internal/platform/id"
)

const (
	timeLayout    = "2006-01-02 15:04"
	titleMaxWidth = 48
	titleEllipsis = "..."
	shortIDLength = 8
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Prompter asks the user for confirmation.
type Prompter interface {
	Confirm(in io.Reader, out io.Writer, message string) (bool, error)
}

// StdioPrompter reads a yes/no answer from the command's input.
type StdioPrompter struct{}

func (StdioPrompter) Confirm(in io.Reader, out io.Writer, message string) (bool, error) {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", message)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTaskTable(tasks []dto.TaskOutput) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "STATUS", "PROGRESS", "SPENT", "EXPECTED", "START", "TITLE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, task := range tasks {
		t.Row(
			id.Short(task.ID, shortIDLength),
			task.Status,
			strconv.Itoa(task.CurrentProgress)+"%",
			strconv.Itoa(task.TotalTimeSpent)+"m",
			strconv.Itoa(task.ExpectedDuration)+"m",
			task.StartTime.Local().Format(timeLayout),
			truncate(task.Title),
		)
	}
	return t.Render()
}

func formatTaskDetail(task dto.TaskOutput, history []dto.UpdateOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "id:          %s\n", task.ID)
	fmt.Fprintf(&sb, "title:       %s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(&sb, "description: %s\n", task.Description)
	}
	fmt.Fprintf(&sb, "status:      %s\n", task.Status)
	fmt.Fprintf(&sb, "progress:    %d%%\n", task.CurrentProgress)
	fmt.Fprintf(&sb, "time spent:  %d of %d min\n", task.TotalTimeSpent, task.ExpectedDuration)
	fmt.Fprintf(&sb, "start:       %s\n", task.StartTime.Local().Format(timeLayout))
	fmt.Fprintf(&sb, "created:     %s\n", task.CreatedAt.Local().Format(timeLayout))
	if len(history) == 0 {
		sb.WriteString("history:     none\n")
		return sb.String()
	}
	sb.WriteString("history:\n")
	for _, u := range history {
		fmt.Fprintf(&sb, "  %s  %3d%%  +%dm", u.Timestamp.Local().Format(timeLayout), u.Percentage, u.TimeSpent)
		if u.Note != "" {
			sb.WriteString("  " + u.Note)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatStats(s dto.StatsOutput) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("TOTAL", "PENDING", "ACTIVE", "COMPLETED", "AVG PROGRESS", "TIME SPENT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Row(
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Pending),
			strconv.Itoa(s.Active),
			strconv.Itoa(s.Completed),
			strconv.Itoa(s.AvgProgress)+"%",
			strconv.Itoa(s.TotalTimeSpent)+"m",
		)
	return t.Render()
}

func truncate(value string) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if len(runes) <= titleMaxWidth {
		return value
	}
	return string(runes[:titleMaxWidth-len(titleEllipsis)]) + titleEllipsis
}
