package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"worksync/internal/modules/task/domain"
	taskout "worksync/internal/modules/task/port/out"
	"worksync/internal/platform/id"
	"worksync/internal/platform/markdown"
	"worksync/internal/platform/slug"
)

const noteSchemaVersion = 1

var historyBlock = markdown.Block{
	Start: "<!-- worksync:history:start -->",
	End:   "<!-- worksync:history:end -->",
}

type noteMeta struct {
	SchemaVersion    int    `yaml:"schema_version"`
	ID               string `yaml:"id"`
	Title            string `yaml:"title"`
	Status           string `yaml:"status"`
	Progress         int    `yaml:"progress"`
	TimeSpent        int    `yaml:"time_spent_minutes"`
	ExpectedDuration int    `yaml:"expected_duration_minutes"`
	StartTime        string `yaml:"start_time"`
	CreatedAt        string `yaml:"created_at"`
}

// MarkdownExporter renders tasks as Markdown notes with YAML frontmatter.
// Re-exporting regenerates the frontmatter and the history block and keeps
// anything the user wrote elsewhere in the note.
type MarkdownExporter struct{}

func NewMarkdownExporter() taskout.NoteExporter {
	return MarkdownExporter{}
}

func NotePath(dir string, task domain.Task) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.md", slug.Make(task.Title), id.Short(task.ID, 8)))
}

func (MarkdownExporter) Export(_ context.Context, dir string, task domain.Task) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := NotePath(dir, task)

	body := ""
	if existing, err := os.ReadFile(path); err == nil {
		var previous noteMeta
		if existingBody, splitErr := markdown.SplitFrontmatter(string(existing), &previous); splitErr == nil {
			body = existingBody
		}
	}
	if strings.TrimSpace(body) == "" {
		body = defaultBody(task)
	}
	body = historyBlock.Replace(body, renderHistory(task))

	meta := noteMeta{
		SchemaVersion:    noteSchemaVersion,
		ID:               task.ID,
		Title:            task.Title,
		Status:           task.Status.Label(),
		Progress:         task.CurrentProgress,
		TimeSpent:        task.TotalTimeSpent,
		ExpectedDuration: task.ExpectedDuration,
		StartTime:        task.StartTime.Format(time.RFC3339),
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
	}
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write task note: %w", err)
	}
	return path, nil
}

func defaultBody(task domain.Task) string {
	title := task.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled task"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if desc := strings.TrimSpace(task.Description); desc != "" {
		b.WriteString(desc + "\n\n")
	}
	b.WriteString("## Notes\n\n## History\n")
	return b.String()
}

func renderHistory(task domain.Task) string {
	history := task.History()
	if len(history) == 0 {
		return "_No updates logged yet._"
	}
	lines := make([]string, 0, len(history))
	for _, u := range history {
		line := fmt.Sprintf("- %s · %d%% · %d min", u.Timestamp.Format("2006-01-02 15:04"), u.Percentage, u.TimeSpent)
		if note := strings.TrimSpace(u.Note); note != "" {
			line += " · " + note
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
