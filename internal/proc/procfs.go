package proc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// procFS reads the Linux proc filesystem. The root is configurable so the
// view can be pointed at a bind-mounted or test procfs.
type procFS struct {
	root string
}

// NewSystemView returns a SystemView backed by the proc filesystem at root.
// An empty root means /proc.
func NewSystemView(root string) SystemView {
	if root == "" {
		root = "/proc"
	}
	return &procFS{root: root}
}

func (p *procFS) PIDs() ([]int, error) {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.root, err)
	}

	pids := make([]int, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		// Non-numeric entries (self, sys, net, ...) are not processes.
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

func (p *procFS) Comm(pid int) (string, error) {
	b, err := os.ReadFile(fmt.Sprintf("%s/%d/comm", p.root, pid))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (p *procFS) Cmdline(pid int) (string, error) {
	b, err := os.ReadFile(fmt.Sprintf("%s/%d/cmdline", p.root, pid))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (p *procFS) Cwd(pid int) (string, error) {
	return os.Readlink(fmt.Sprintf("%s/%d/cwd", p.root, pid))
}

func (p *procFS) FDLinks(pid int) ([]string, error) {
	fdDir := fmt.Sprintf("%s/%d/fd", p.root, pid)
	entries, err := os.ReadDir(fdDir)
	if err != nil {
		return nil, err
	}

	links := make([]string, 0, len(entries))
	for _, e := range entries {
		link, err := os.Readlink(fdDir + "/" + e.Name())
		if err != nil {
			// Descriptor closed between listing and readlink.
			continue
		}
		links = append(links, link)
	}
	return links, nil
}

func (p *procFS) NetTable(name string) (string, error) {
	b, err := os.ReadFile(p.root + "/net/" + name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
