package proc

import (
	"strconv"
	"strings"

	"portsight/pkg/model"
)

const socketLinkPrefix = "socket:["

// ResolveInode finds the process owning the socket with the given inode by
// walking each table entry's descriptor links for a target of the form
// socket:[<inode>]. Inodes are unique per live socket, so the first match is
// the only match. Processes whose descriptors cannot be listed anymore are
// skipped.
func ResolveInode(sv SystemView, table map[int]model.Process, inode uint64) (int, model.Process, bool) {
	for pid, p := range table {
		links, err := sv.FDLinks(pid)
		if err != nil {
			continue
		}
		for _, link := range links {
			if !strings.HasPrefix(link, socketLinkPrefix) || !strings.HasSuffix(link, "]") {
				continue
			}
			n, err := strconv.ParseUint(link[len(socketLinkPrefix):len(link)-1], 10, 64)
			if err != nil {
				continue
			}
			if n == inode {
				return pid, p, true
			}
		}
	}
	return 0, model.Process{}, false
}
