package model

// NoProcess is the placeholder for process fields on records whose socket
// could not be attributed to any process. Every PortRecord field is always
// populated so renderers need no nil checks.
const NoProcess = "-"

// PortRecord is one row of the final report: a socket joined with the
// process that owns it, or with placeholders when no owner was found.
type PortRecord struct {
	Port       int    `json:"port"`
	Protocol   string `json:"protocol"`
	State      string `json:"state"`
	PID        string `json:"pid"`
	Process    string `json:"process"`
	Command    string `json:"command"`
	WorkingDir string `json:"working_dir"`
}
