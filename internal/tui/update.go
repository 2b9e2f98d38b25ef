package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"portsight/pkg/model"
)

type rescanMsg struct {
	records []model.PortRecord
	err     error
}

func (m Model) doRescan() tea.Cmd {
	rescan := m.rescan
	return func() tea.Msg {
		records, err := rescan()
		return rescanMsg{records: records, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 8
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		return m, nil

	case rescanMsg:
		if msg.err != nil {
			m.statusMsg = "rescan failed: " + msg.err.Error()
			return m, nil
		}
		m.statusMsg = ""
		m.records = msg.records
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.String() {
			case "esc", "enter":
				m.input.Blur()
				return m, nil
			default:
				m.input, cmd = m.input.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.input.Focus()
			return m, textinput.Blink
		case "r":
			m.statusMsg = "rescanning..."
			return m, m.doRescan()
		case "enter":
			m.showDetail = !m.showDetail
			return m, nil
		case "esc":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.applyFilter()
				return m, nil
			}
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// applyFilter narrows the visible rows to those matching the search input
// on any field and rebuilds the table rows.
func (m *Model) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.input.Value()))

	m.filtered = m.filtered[:0]
	for _, r := range m.records {
		if needle == "" || recordMatches(r, needle) {
			m.filtered = append(m.filtered, r)
		}
	}

	rows := make([]table.Row, 0, len(m.filtered))
	for _, r := range m.filtered {
		rows = append(rows, table.Row{
			strconv.Itoa(r.Port),
			r.Protocol,
			r.State,
			r.PID,
			r.Process,
			r.Command,
			r.WorkingDir,
		})
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func recordMatches(r model.PortRecord, needle string) bool {
	for _, s := range []string{
		strconv.Itoa(r.Port),
		r.Protocol,
		r.State,
		r.PID,
		r.Process,
		r.Command,
		r.WorkingDir,
	} {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func (m Model) selectedRecord() (model.PortRecord, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.filtered) {
		return model.PortRecord{}, false
	}
	return m.filtered[i], true
}
