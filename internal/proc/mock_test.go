package proc

import (
	"os"
)

// fakeView is an in-memory SystemView fixture. Absent entries behave like
// vanished processes or missing tables.
type fakeView struct {
	pids    []int
	pidsErr error
	comm    map[int]string
	cmdline map[int]string
	cwd     map[int]string
	fdLinks map[int][]string
	fdErr   map[int]error
	tables  map[string]string

	fdCalls int // FDLinks invocations, for resolver-laziness checks
}

func (f *fakeView) PIDs() ([]int, error) {
	if f.pidsErr != nil {
		return nil, f.pidsErr
	}
	return f.pids, nil
}

func (f *fakeView) Comm(pid int) (string, error)    { return lookup(f.comm, pid) }
func (f *fakeView) Cmdline(pid int) (string, error) { return lookup(f.cmdline, pid) }
func (f *fakeView) Cwd(pid int) (string, error)     { return lookup(f.cwd, pid) }

func (f *fakeView) FDLinks(pid int) ([]string, error) {
	f.fdCalls++
	if err := f.fdErr[pid]; err != nil {
		return nil, err
	}
	links, ok := f.fdLinks[pid]
	if !ok {
		return nil, os.ErrNotExist
	}
	return links, nil
}

func (f *fakeView) NetTable(name string) (string, error) {
	t, ok := f.tables[name]
	if !ok {
		return "", os.ErrNotExist
	}
	return t, nil
}

func lookup(m map[int]string, pid int) (string, error) {
	v, ok := m[pid]
	if !ok {
		return "", os.ErrNotExist
	}
	return v, nil
}
