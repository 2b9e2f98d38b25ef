package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portsight/pkg/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#585858")) // Dark Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")). // White
			Background(lipgloss.Color("#5f5fd7")). // Purple/Blue
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("#585858")). // Dark Gray
				Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")) // Dimmed Gray

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bcbcbc")). // Light Gray
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")). // Soft red
			Bold(true)
)

// Rescan produces a fresh snapshot with the same scan configuration. It is
// only invoked on an explicit refresh keypress.
type Rescan func() ([]model.PortRecord, error)

type Model struct {
	table      table.Model
	input      textinput.Model
	records    []model.PortRecord
	filtered   []model.PortRecord
	rescan     Rescan
	showDetail bool
	statusMsg  string
	width      int
	height     int
	quitting   bool
}

func New(records []model.PortRecord, rescan Rescan) Model {
	columns := []table.Column{
		{Title: "Port", Width: 6},
		{Title: "Protocol", Width: 8},
		{Title: "State", Width: 12},
		{Title: "PID", Width: 8},
		{Title: "Process", Width: 16},
		{Title: "Command", Width: 40},
		{Title: "Working Dir", Width: 28},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffaf")). // Light Yellow
		Background(lipgloss.Color("#5f00d7")). // Purple
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Search port, state, process, command..."
	ti.CharLimit = 156
	ti.Width = 50
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.Blur()

	m := Model{
		table:   t,
		input:   ti,
		records: records,
		rescan:  rescan,
	}
	m.applyFilter()
	return m
}

// Start runs the interactive browser over an already-taken snapshot.
func Start(records []model.PortRecord, rescan Rescan) error {
	p := tea.NewProgram(New(records, rescan), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
