package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "worksync/internal/modules/account/dto"
	taskdto "worksync/internal/modules/task/dto"
	"worksync/internal/ui/components"
	"worksync/internal/ui/theme"
	tasksview "worksync/internal/ui/views/tasks"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type taskPort interface {
	List(ctx context.Context, accountID, status string) ([]taskdto.TaskOutput, error)
	Stats(ctx context.Context, accountID string) (taskdto.StatsOutput, error)
	Update(ctx context.Context, taskID string, percentage, minutes int, note string) (taskdto.TaskOutput, error)
	Delete(ctx context.Context, taskID string) error
	Export(ctx context.Context, accountID, dir string) (taskdto.ExportOutput, error)
}

// ─── tabs ────────────────────────────────────────────────────────────────────

type tabID int

const (
	tabAll tabID = iota
	tabPending
	tabActive
	tabCompleted
	tabCount
)

var tabLabels = [tabCount]string{"All", "Pending", "Active", "Completed"}

var tabFilters = [tabCount]string{"all", "pending", "active", "completed"}

// ─── async messages ──────────────────────────────────────────────────────────

type tasksLoadedMsg struct {
	tab   tabID
	tasks []taskdto.TaskOutput
	stats taskdto.StatsOutput
	err   error
}

type mutationDoneMsg struct {
	status string
	err    error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Reload  key.Binding
	Command key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next tab")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Reload, k.Command, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Reload},
		{k.Command, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the dashboard of the signed-in account. Every tab switch, reload
// and mutation re-reads the task list and stats; nothing is cached between
// loads.
type Model struct {
	account accountdto.AccountOutput
	tasks   taskPort

	view      tasksview.Model
	stats     taskdto.StatsOutput
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	cmdline   components.CommandLine
	status    string
	width     int
	height    int

	// pendingDelete is the task waiting on a y/N answer.
	pendingDelete *taskdto.TaskOutput
}

func NewModel(account accountdto.AccountOutput, tasks taskPort) Model {
	return Model{
		account:   account,
		tasks:     tasks,
		view:      tasksview.New(),
		activeTab: tabAll,
		keys:      defaultKeys(),
		help:      help.New(),
		cmdline:   components.NewCommandLine(commands...),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.view.Init(), m.loadCmd(m.activeTab))
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The command line takes all input while open.
	if m.cmdline.Active() {
		var cmd tea.Cmd
		m.cmdline, cmd = m.cmdline.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cmdline.SetWidth(m.width)
		m.help.Width = m.width
		m.view, _ = m.view.Update(tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()})
		return m, nil

	case tasksLoadedMsg:
		if msg.tab != m.activeTab {
			// A slower load for a tab the user already left.
			return m, nil
		}
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			cmd := m.view.SetTasks(tabLabels[msg.tab], nil)
			return m, cmd
		}
		m.stats = msg.stats
		cmd := m.view.SetTasks(tabLabels[msg.tab], msg.tasks)
		return m, cmd

	case mutationDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		cmd := m.reload()
		return m, cmd

	case components.CommandMsg:
		return m.runCommand(msg)

	case components.CommandAbortMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.pendingDelete != nil {
			return m.answerDelete(msg)
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.view.Filtering() {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			cmd := m.reload()
			return m, cmd
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			cmd := m.reload()
			return m, cmd
		case "r":
			m.status = "reloading"
			cmd := m.reload()
			return m, cmd
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			cmd := m.cmdline.Activate()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	cards := m.renderCards()
	statusBar := m.renderStatusBar()

	contentH := m.contentHeight()
	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	default:
		content = m.view.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, cards, content, statusBar)
}

func (m Model) contentHeight() int {
	// header, card row and status bar
	return max(m.height-1-4-2, 1)
}

func (m Model) renderHeader() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := " " + tabLabels[i] + " "
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(label)
		} else {
			parts[i] = theme.Muted.Render(label)
		}
	}
	left := "worksync  " + strings.Join(parts, theme.Muted.Render(" │ "))
	right := theme.Muted.Render(m.account.Name + " <" + m.account.Email + ">")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderCards() string {
	s := m.stats
	return components.StatRow(
		components.IntCard("total", s.Total, theme.Text),
		components.IntCard("pending", s.Pending, theme.Subtext0),
		components.IntCard("active", s.Active, theme.Yellow),
		components.IntCard("completed", s.Completed, theme.Green),
		components.StatCard{Label: "avg progress", Value: fmt.Sprintf("%d%%", s.AvgProgress), Color: theme.Sapphire},
		components.StatCard{Label: "time spent", Value: fmt.Sprintf("%dm", s.TotalTimeSpent), Color: theme.Lavender},
	)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.cmdline.Active() {
		left = m.cmdline.View()
	}
	right := theme.Muted.Render("tab:switch  r:reload  ::command  ?:help  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

// ─── command line ────────────────────────────────────────────────────────────

var commands = []components.Command{
	{Name: "update", Usage: "update <percent> <minutes> [note]"},
	{Name: "delete", Usage: "delete (asks y/N)"},
	{Name: "export", Usage: "export <dir>"},
	{Name: "reload", Usage: "reload"},
}

func (m Model) runCommand(c components.CommandMsg) (tea.Model, tea.Cmd) {
	selected, hasSelection := m.view.SelectedTask()

	switch c.Name {
	case "update":
		if !hasSelection {
			m.status = "no task selected"
			return m, nil
		}
		if len(c.Args) < 2 {
			m.status = "usage: update <percent> <minutes> [note]"
			return m, nil
		}
		pct, err := strconv.Atoi(c.Args[0])
		if err != nil {
			m.status = "invalid percent " + c.Args[0]
			return m, nil
		}
		minutes, err := strconv.Atoi(c.Args[1])
		if err != nil {
			m.status = "invalid minutes " + c.Args[1]
			return m, nil
		}
		note := strings.Join(c.Args[2:], " ")
		return m, m.updateCmd(selected.ID, pct, minutes, note)

	case "delete":
		if !hasSelection {
			m.status = "no task selected"
			return m, nil
		}
		m.pendingDelete = &selected
		m.status = fmt.Sprintf("delete %q and its history? y/N", selected.Title)
		return m, nil

	case "export":
		if len(c.Args) < 1 {
			m.status = "usage: export <dir>"
			return m, nil
		}
		return m, m.exportCmd(c.Args[0])

	case "reload":
		cmd := m.reload()
		return m, cmd

	default:
		m.status = "unknown command: " + c.Name
	}
	return m, nil
}

// answerDelete resolves a pending delete. Only "y" deletes; any other key
// cancels.
func (m Model) answerDelete(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	target := *m.pendingDelete
	m.pendingDelete = nil
	if k.String() == "y" || k.String() == "Y" {
		m.status = fmt.Sprintf("deleting %q", target.Title)
		return m, m.deleteCmd(target.ID)
	}
	m.status = "delete cancelled"
	return m, nil
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m *Model) reload() tea.Cmd {
	return tea.Batch(m.view.SetLoading(tabLabels[m.activeTab]), m.loadCmd(m.activeTab))
}

func (m Model) loadCmd(tab tabID) tea.Cmd {
	accountID := m.account.ID
	return func() tea.Msg {
		ctx := context.Background()
		tasks, err := m.tasks.List(ctx, accountID, tabFilters[tab])
		if err != nil {
			return tasksLoadedMsg{tab: tab, err: err}
		}
		stats, err := m.tasks.Stats(ctx, accountID)
		return tasksLoadedMsg{tab: tab, tasks: tasks, stats: stats, err: err}
	}
}

func (m Model) updateCmd(taskID string, pct, minutes int, note string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.tasks.Update(context.Background(), taskID, pct, minutes, note)
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("logged %d%% on %q (%s)", out.CurrentProgress, out.Title, out.Status)}
	}
}

func (m Model) deleteCmd(taskID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.tasks.Delete(context.Background(), taskID); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: "task deleted"}
	}
}

func (m Model) exportCmd(dir string) tea.Cmd {
	accountID := m.account.ID
	return func() tea.Msg {
		out, err := m.tasks.Export(context.Background(), accountID, dir)
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("exported %d notes to %s", len(out.Paths), dir)}
	}
}
