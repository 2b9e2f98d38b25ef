package proc

import (
	"fmt"
	"strings"

	"portsight/pkg/model"
)

// ReadProcess collects the metadata for one process. It never fails: a
// process can exit at any point between discovery and read, so every source
// that cannot be read degrades to a placeholder instead.
func ReadProcess(sv SystemView, pid int) model.Process {
	name := model.UnknownValue
	if comm, err := sv.Comm(pid); err == nil {
		if comm = strings.TrimSpace(comm); comm != "" {
			name = comm
		}
	}

	// cmdline is NUL-separated; a readable but empty one (kernel threads,
	// zombies) falls back to the short name.
	command := model.UnknownValue
	if raw, err := sv.Cmdline(pid); err == nil {
		command = strings.TrimSpace(strings.ReplaceAll(raw, "\x00", " "))
	}
	if command == "" {
		command = name
	}

	cwd := model.UnknownValue
	if wd, err := sv.Cwd(pid); err == nil && wd != "" {
		cwd = wd
	}

	return model.Process{
		PID:        pid,
		Name:       name,
		Cmdline:    command,
		WorkingDir: cwd,
	}
}

// BuildProcessTable reads metadata for every visible process and returns the
// PID-keyed table used to attribute sockets. The table may be empty but is
// never nil; the only failure is the process namespace itself being
// unlistable.
func BuildProcessTable(sv SystemView) (map[int]model.Process, error) {
	pids, err := sv.PIDs()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	table := make(map[int]model.Process, len(pids))
	for _, pid := range pids {
		if pid <= 0 {
			continue
		}
		table[pid] = ReadProcess(sv, pid)
	}
	return table, nil
}
