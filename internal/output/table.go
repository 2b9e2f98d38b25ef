package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"portsight/pkg/model"
)

const noPortsMsg = "No open ports found."

// Column clamps for the two free-text columns.
const (
	standardColWidth = 30
	compactWrapWidth = 50
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

var headers = []string{"PORT", "PROTOCOL", "STATE", "PID", "PROCESS", "COMMAND", "WORKING_DIR"}

// RenderTable writes the standard table: ASCII borders, command and working
// directory truncated so the table stays on one screen.
func RenderTable(w io.Writer, records []model.PortRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, noPortsMsg)
		return
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Port),
			r.Protocol,
			r.State,
			r.PID,
			r.Process,
			truncate.StringWithTail(r.Command, standardColWidth, "..."),
			truncate.StringWithTail(r.WorkingDir, standardColWidth, "..."),
		})
	}

	fmt.Fprintln(w, newTable(lipgloss.NormalBorder()).Headers(headers...).Rows(rows...))
}

// RenderCompact writes the rounded-border table with the long columns
// word-wrapped instead of truncated.
func RenderCompact(w io.Writer, records []model.PortRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, noPortsMsg)
		return
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Port),
			r.Protocol,
			r.State,
			r.PID,
			r.Process,
			wordwrap.String(r.Command, compactWrapWidth),
			wordwrap.String(r.WorkingDir, compactWrapWidth),
		})
	}

	fmt.Fprintln(w, newTable(lipgloss.RoundedBorder()).Headers(headers...).Rows(rows...))
}

func newTable(border lipgloss.Border) *table.Table {
	return table.New().
		Border(border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
