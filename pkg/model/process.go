package model

// UnknownValue is substituted for process metadata that cannot be read
// (permission denied, process exited between discovery and read).
const UnknownValue = "unknown"

type Process struct {
	PID        int
	Name       string // short executable name from comm
	Cmdline    string // full command line, NULs replaced with spaces
	WorkingDir string
}
