package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"worksync/internal/ui/theme"
)

// Command is one verb the command line accepts.
type Command struct {
	Name  string
	Usage string
}

// CommandMsg is a submitted line split into its verb and arguments.
type CommandMsg struct {
	Name string
	Args []string
}

// CommandAbortMsg means the line was dismissed or submitted empty.
type CommandAbortMsg struct{}

var usageStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)

// CommandLine is a vi-style ":" prompt drawn in the status bar. Tab completes
// the verb from the registered commands.
type CommandLine struct {
	input    textinput.Model
	commands []Command
	active   bool
}

func NewCommandLine(commands ...Command) CommandLine {
	in := textinput.New()
	in.Prompt = ":"
	in.CharLimit = 256
	in.ShowSuggestions = true
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}
	in.SetSuggestions(names)
	return CommandLine{input: in, commands: commands}
}

func (c CommandLine) Active() bool { return c.active }

// Activate clears any previous line and takes focus.
func (c *CommandLine) Activate() tea.Cmd {
	c.active = true
	c.input.Reset()
	return c.input.Focus()
}

func (c *CommandLine) SetWidth(w int) {
	c.input.Width = max(w/2, 16)
}

func (c CommandLine) Update(msg tea.Msg) (CommandLine, tea.Cmd) {
	if !c.active {
		return c, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			c.close()
			return c, emit(CommandAbortMsg{})
		case tea.KeyEnter:
			fields := strings.Fields(c.input.Value())
			c.close()
			if len(fields) == 0 {
				return c, emit(CommandAbortMsg{})
			}
			return c, emit(CommandMsg{Name: strings.ToLower(fields[0]), Args: fields[1:]})
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// Usage describes the verb typed so far. With no verb, or one that matches
// nothing, it lists every verb.
func (c CommandLine) Usage() string {
	verb := ""
	if fields := strings.Fields(strings.ToLower(c.input.Value())); len(fields) > 0 {
		verb = fields[0]
	}
	var names []string
	for _, cmd := range c.commands {
		if verb != "" && strings.HasPrefix(cmd.Name, verb) {
			return cmd.Usage
		}
		names = append(names, cmd.Name)
	}
	return strings.Join(names, " | ")
}

func (c CommandLine) View() string {
	if !c.active {
		return ""
	}
	return c.input.View() + "  " + usageStyle.Render(c.Usage())
}

func (c *CommandLine) close() {
	c.active = false
	c.input.Blur()
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
