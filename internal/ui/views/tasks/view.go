package tasks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	taskdto "worksync/internal/modules/task/dto"
	"worksync/internal/platform/id"
	"worksync/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04"

// ─── list item ───────────────────────────────────────────────────────────────

type taskItem struct {
	task taskdto.TaskOutput
}

func (i taskItem) Title() string {
	if i.task.Title == "" {
		return "(untitled)"
	}
	return i.task.Title
}

func (i taskItem) Description() string {
	return fmt.Sprintf("%s  %3d%%  %dm", i.task.Status, i.task.CurrentProgress, i.task.TotalTimeSpent)
}

func (i taskItem) FilterValue() string { return i.task.Title }

// ─── model ───────────────────────────────────────────────────────────────────

// Model shows the tasks of one dashboard tab with the selected task's
// details and update history beside them.
type Model struct {
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New() Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Tasks"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("task", "tasks")

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{list: l, detail: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetLoading shows the spinner until the next SetTasks.
func (m *Model) SetLoading(title string) tea.Cmd {
	m.loading = true
	m.list.Title = title
	return m.spinner.Tick
}

// SetTasks replaces the list content and keeps the selection on the same
// task when it is still present.
func (m *Model) SetTasks(title string, tasks []taskdto.TaskOutput) tea.Cmd {
	m.loading = false
	m.list.Title = title
	selected, _ := m.SelectedTaskID()

	items := make([]list.Item, len(tasks))
	cursor := 0
	for i, t := range tasks {
		items[i] = taskItem{task: t}
		if t.ID == selected {
			cursor = i
		}
	}
	cmd := m.list.SetItems(items)
	m.list.Select(cursor)
	m.refreshDetail()
	return cmd
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		prevIdx := m.list.Index()
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.refreshDetail()
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading tasks…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := theme.Pane.
		Width(max(detailW-2, 0)).
		Height(max(m.height-2, 0)).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedTask returns the highlighted task, if any.
func (m Model) SelectedTask() (taskdto.TaskOutput, bool) {
	if item, ok := m.list.SelectedItem().(taskItem); ok {
		return item.task, true
	}
	return taskdto.TaskOutput{}, false
}

func (m Model) SelectedTaskID() (string, bool) {
	t, ok := m.SelectedTask()
	return t.ID, ok
}

// Filtering reports whether the list's search filter is active, in which
// case the app model must not treat keys as global shortcuts.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Len is the number of tasks currently listed.
func (m Model) Len() int {
	return len(m.list.Items())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = max(detailW-4, 0)
	m.detail.Height = max(m.height-2, 0)
}

func (m *Model) refreshDetail() {
	item, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		m.detail.SetContent(theme.Muted.Render("No tasks here yet"))
		return
	}
	m.detail.SetContent(RenderDetail(item.task))
	m.detail.GotoTop()
}

// RenderDetail formats a task and its history, newest entry first.
func RenderDetail(t taskdto.TaskOutput) string {
	var sb strings.Builder
	title := t.Title
	if title == "" {
		title = "(untitled)"
	}
	sb.WriteString(theme.Title.Render(title) + "\n")
	if t.Description != "" {
		sb.WriteString(t.Description + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render("id:       ") + id.Short(t.ID, 8) + "\n")
	sb.WriteString(theme.Muted.Render("status:   ") + theme.Status(t.Status) + "\n")
	sb.WriteString(theme.Muted.Render("progress: ") + theme.ProgressBar(t.CurrentProgress, 20) + fmt.Sprintf(" %d%%\n", t.CurrentProgress))
	sb.WriteString(theme.Muted.Render("spent:    ") + fmt.Sprintf("%d of %d min\n", t.TotalTimeSpent, t.ExpectedDuration))
	sb.WriteString(theme.Muted.Render("start:    ") + t.StartTime.Local().Format(timeLayout) + "\n")

	sb.WriteString("\n" + theme.Title.Render("History") + "\n")
	if len(t.Updates) == 0 {
		sb.WriteString(theme.Muted.Render("no progress logged") + "\n")
		return sb.String()
	}
	for i := len(t.Updates) - 1; i >= 0; i-- {
		u := t.Updates[i]
		line := fmt.Sprintf("%s  %3d%%  +%dm", u.Timestamp.Local().Format(timeLayout), u.Percentage, u.TimeSpent)
		if u.Note != "" {
			line += "  " + u.Note
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}
