package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	accountdto "worksync/internal/modules/account/dto"
	taskdto "worksync/internal/modules/task/dto"
	"worksync/internal/ui/components"
)

type fakeTasks struct {
	tasks    []taskdto.TaskOutput
	filters  []string
	updated  []string
	deleted  []string
	exported []string
}

func (f *fakeTasks) List(_ context.Context, accountID, status string) ([]taskdto.TaskOutput, error) {
	f.filters = append(f.filters, status)
	var out []taskdto.TaskOutput
	for _, t := range f.tasks {
		if t.UserID != accountID {
			continue
		}
		if status == "all" || (status == "active" && t.Status == "in_progress") || t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTasks) Stats(_ context.Context, _ string) (taskdto.StatsOutput, error) {
	return taskdto.StatsOutput{Total: len(f.tasks), Pending: 1, Active: 1, AvgProgress: 25, TotalTimeSpent: 40}, nil
}

func (f *fakeTasks) Update(_ context.Context, taskID string, percentage, minutes int, note string) (taskdto.TaskOutput, error) {
	f.updated = append(f.updated, taskID+"|"+note)
	return taskdto.TaskOutput{ID: taskID, Title: "Write report", CurrentProgress: percentage, Status: "in_progress"}, nil
}

func (f *fakeTasks) Delete(_ context.Context, taskID string) error {
	f.deleted = append(f.deleted, taskID)
	return nil
}

func (f *fakeTasks) Export(_ context.Context, _, dir string) (taskdto.ExportOutput, error) {
	f.exported = append(f.exported, dir)
	return taskdto.ExportOutput{Paths: []string{dir + "/a.md"}}, nil
}

func newTestModel() (Model, *fakeTasks) {
	fake := &fakeTasks{tasks: []taskdto.TaskOutput{
		{ID: "t2", UserID: "u1", Title: "Write report", Status: "in_progress", CurrentProgress: 50, TotalTimeSpent: 40},
		{ID: "t1", UserID: "u1", Title: "Plan sprint", Status: "pending"},
	}}
	m := NewModel(accountdto.AccountOutput{ID: "u1", Name: "Ada", Email: "ada@example.com"}, fake)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), fake
}

func load(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.loadCmd(m.activeTab)()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestTabSwitchReloadsWithFilter(t *testing.T) {
	t.Parallel()
	m, fake := newTestModel()
	m = load(t, m)
	if m.view.Len() != 2 {
		t.Fatalf("expected 2 tasks on All, got %d", m.view.Len())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.activeTab != tabPending {
		t.Fatalf("expected pending tab, got %d", m.activeTab)
	}
	if cmd == nil {
		t.Fatalf("tab switch must trigger a reload")
	}
	m = load(t, m)
	if got := fake.filters[len(fake.filters)-1]; got != "pending" {
		t.Fatalf("expected pending filter, got %q", got)
	}
	if m.view.Len() != 1 {
		t.Fatalf("expected 1 pending task, got %d", m.view.Len())
	}
	if m.stats.Total != 2 || m.stats.TotalTimeSpent != 40 {
		t.Fatalf("stats not applied: %+v", m.stats)
	}
	if !strings.Contains(m.View(), "Pending") {
		t.Fatalf("view should render tab labels")
	}
}

func TestStaleLoadIsIgnored(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel()
	stale := m.loadCmd(tabCompleted)()
	next, _ := m.Update(stale)
	m = next.(Model)
	if m.view.Len() != 0 {
		t.Fatalf("load for another tab must be dropped")
	}
}

// submit feeds a typed command line to the model the way the command line
// component reports it.
func submit(m Model, line string) (Model, tea.Cmd) {
	fields := strings.Fields(line)
	next, cmd := m.Update(components.CommandMsg{Name: fields[0], Args: fields[1:]})
	return next.(Model), cmd
}

func press(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCommandUpdateTargetsSelectedTask(t *testing.T) {
	t.Parallel()
	m, fake := newTestModel()
	m = load(t, m)

	m, cmd := submit(m, "update 60 25 halfway there")
	if cmd == nil {
		t.Fatalf("expected an update command")
	}
	done, ok := cmd().(mutationDoneMsg)
	if !ok || done.err != nil {
		t.Fatalf("unexpected result %#v", done)
	}
	if len(fake.updated) != 1 || fake.updated[0] != "t2|halfway there" {
		t.Fatalf("unexpected update calls %v", fake.updated)
	}
	next, _ := m.Update(done)
	m = next.(Model)
	if !strings.Contains(m.status, "60%") {
		t.Fatalf("status should report progress, got %q", m.status)
	}
}

func TestCommandRejectsBadInput(t *testing.T) {
	t.Parallel()
	m, fake := newTestModel()
	m = load(t, m)
	for _, input := range []string{"update", "update x 10", "update 10 y", "export", "launch"} {
		var cmd tea.Cmd
		m, cmd = submit(m, input)
		if cmd != nil {
			t.Fatalf("%q should not produce a command", input)
		}
		if m.status == "ready" {
			t.Fatalf("%q should report a status", input)
		}
	}
	if len(fake.updated) != 0 || len(fake.exported) != 0 {
		t.Fatalf("bad input reached the port")
	}
}

func TestQuitKey(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestDeleteWaitsForConfirmation(t *testing.T) {
	t.Parallel()
	for _, answer := range []string{"n", "esc", "enter", "x"} {
		m, fake := newTestModel()
		m = load(t, m)

		m, cmd := submit(m, "delete")
		if cmd != nil {
			t.Fatalf("delete must not run before an answer")
		}
		if !strings.Contains(m.status, `"Write report"`) || !strings.Contains(m.status, "y/N") {
			t.Fatalf("expected a y/N prompt naming the task, got %q", m.status)
		}

		next, cmd := m.Update(press(answer))
		m = next.(Model)
		if cmd != nil {
			t.Fatalf("answer %q must not delete", answer)
		}
		if m.status != "delete cancelled" || m.pendingDelete != nil {
			t.Fatalf("answer %q: unexpected state %q %v", answer, m.status, m.pendingDelete)
		}
		if len(fake.deleted) != 0 {
			t.Fatalf("answer %q reached the port: %v", answer, fake.deleted)
		}
	}
}

func TestDeleteConfirmedWithY(t *testing.T) {
	t.Parallel()
	m, fake := newTestModel()
	m = load(t, m)

	m, _ = submit(m, "delete")
	next, cmd := m.Update(press("y"))
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("expected a delete command")
	}
	done, ok := cmd().(mutationDoneMsg)
	if !ok || done.err != nil {
		t.Fatalf("unexpected result %#v", done)
	}
	if len(fake.deleted) != 1 || fake.deleted[0] != "t2" {
		t.Fatalf("unexpected delete calls %v", fake.deleted)
	}
	if m.pendingDelete != nil {
		t.Fatalf("confirmation must be consumed")
	}
}

func TestColonOpensCommandLine(t *testing.T) {
	t.Parallel()
	m, fake := newTestModel()
	m = load(t, m)

	next, _ := m.Update(press(":"))
	m = next.(Model)
	if !m.cmdline.Active() {
		t.Fatalf("':' should open the command line")
	}
	next, _ = m.Update(press("export notes"))
	m = next.(Model)
	if got := m.cmdline.Usage(); got != "export <dir>" {
		t.Fatalf("expected the export usage, got %q", got)
	}
	next, cmd := m.Update(press("enter"))
	m = next.(Model)
	if m.cmdline.Active() || cmd == nil {
		t.Fatalf("enter should close the line and submit")
	}
	next, cmd = m.Update(cmd())
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("expected an export command")
	}
	if _, ok := cmd().(mutationDoneMsg); !ok || len(fake.exported) != 1 || fake.exported[0] != "notes" {
		t.Fatalf("unexpected export calls %v", fake.exported)
	}
}
