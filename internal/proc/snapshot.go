package proc

import (
	"fmt"
	"sort"
	"strconv"

	"portsight/pkg/model"
)

// Snapshot reads the TCP and UDP socket tables once, joins every admitted
// socket with its owning process, and returns the rows sorted ascending by
// port. Equal ports keep table order, TCP before UDP.
//
// A missing protocol table contributes zero rows; the scan fails only when
// the process namespace cannot be listed or neither table is readable.
func Snapshot(sv SystemView, cfg Config) ([]model.PortRecord, error) {
	table, err := BuildProcessTable(sv)
	if err != nil {
		return nil, err
	}

	var (
		records  []model.PortRecord
		tableErr error
		readable int
	)
	for _, proto := range []string{TableTCP, TableUDP} {
		text, err := sv.NetTable(proto)
		if err != nil {
			tableErr = err
			continue
		}
		readable++
		for _, s := range ParseSocketTable(proto, text, cfg) {
			records = append(records, join(sv, table, s))
		}
	}
	if readable == 0 {
		return nil, fmt.Errorf("read socket tables: %w", tableErr)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Port < records[j].Port
	})
	return records, nil
}

// join merges one socket with the process that owns it. Inode 0 means the
// row carries no socket and can never match, so no resolution is attempted.
func join(sv SystemView, table map[int]model.Process, s model.Socket) model.PortRecord {
	rec := model.PortRecord{
		Port:       s.Port,
		Protocol:   s.Protocol,
		State:      s.State,
		PID:        model.NoProcess,
		Process:    model.NoProcess,
		Command:    model.NoProcess,
		WorkingDir: model.NoProcess,
	}
	if s.Inode == 0 {
		return rec
	}

	if pid, p, ok := ResolveInode(sv, table, s.Inode); ok {
		rec.PID = strconv.Itoa(pid)
		rec.Process = p.Name
		rec.Command = p.Cmdline
		rec.WorkingDir = p.WorkingDir
	}
	return rec
}
