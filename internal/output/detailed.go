package output

import (
	"fmt"
	"io"
	"strings"

	"portsight/pkg/model"
)

// RenderDetailed writes one block per record with nothing truncated.
func RenderDetailed(w io.Writer, records []model.PortRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, noPortsMsg)
		return
	}

	rule := strings.Repeat("-", 60)
	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Port: %d (%s)\n", r.Port, r.Protocol)
		fmt.Fprintf(w, "State: %s\n", r.State)
		fmt.Fprintf(w, "PID: %s\n", r.PID)
		fmt.Fprintf(w, "Process: %s\n", r.Process)
		fmt.Fprintf(w, "Command: %s\n", r.Command)
		fmt.Fprintf(w, "Working Dir: %s\n", r.WorkingDir)
		fmt.Fprintln(w, rule)
	}
}
