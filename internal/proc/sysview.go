package proc

// SystemView is the read-only window onto the kernel's process and socket
// tables. The production implementation reads procfs; tests substitute an
// in-memory fixture.
type SystemView interface {
	// PIDs enumerates the identifiers of all currently visible processes.
	PIDs() ([]int, error)

	// Comm returns the short executable name of a process.
	Comm(pid int) (string, error)

	// Cmdline returns the raw command line of a process, NUL-separated.
	Cmdline(pid int) (string, error)

	// Cwd resolves the working directory of a process.
	Cwd(pid int) (string, error)

	// FDLinks resolves the symlink targets of a process's open file
	// descriptors.
	FDLinks(pid int) ([]string, error)

	// NetTable returns the raw text of a protocol's socket table,
	// e.g. "tcp" or "udp".
	NetTable(name string) (string, error)
}
