package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("portsight") + " " +
		footerStyle.Render(fmt.Sprintf("%d port(s)", len(m.filtered)))

	status := "Mode: Navigation (press / to search)"
	if m.input.Focused() {
		status = "Mode: Searching (Esc/Enter to stop)"
	}
	if m.statusMsg != "" {
		status = errorStyle.Render(m.statusMsg)
	}

	sections := []string{
		title,
		m.input.View(),
		m.table.View(),
	}

	if m.showDetail {
		if r, ok := m.selectedRecord(); ok {
			detail := lipgloss.JoinVertical(lipgloss.Left,
				detailLabelStyle.Render(fmt.Sprintf("Port %d (%s)", r.Port, r.Protocol)),
				"State: "+r.State,
				"PID: "+r.PID,
				"Process: "+r.Process,
				"Command: "+r.Command,
				"Working Dir: "+r.WorkingDir,
			)
			sections = append(sections, baseStyle.Padding(0, 1).Render(detail))
		}
	}

	sections = append(sections,
		footerStyle.Render(status),
		footerStyle.Render("↑/↓ move • enter details • r rescan • / search • q quit"),
	)

	return baseStyle.Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}
