package proc

import (
	"errors"
	"testing"

	"portsight/pkg/model"
)

func TestResolveInode(t *testing.T) {
	table := map[int]model.Process{
		42: {PID: 42, Name: "nginx"},
	}
	sv := &fakeView{
		fdLinks: map[int][]string{
			42: {"/dev/null", "pipe:[999]", "socket:[12345]"},
		},
	}

	pid, p, ok := ResolveInode(sv, table, 12345)
	if !ok {
		t.Fatal("ResolveInode() ok = false, want true")
	}
	if pid != 42 || p.Name != "nginx" {
		t.Errorf("got pid=%d name=%q, want 42/nginx", pid, p.Name)
	}
}

func TestResolveInodeNoMatch(t *testing.T) {
	table := map[int]model.Process{
		42: {PID: 42, Name: "nginx"},
	}
	sv := &fakeView{
		fdLinks: map[int][]string{
			42: {"socket:[777]"},
		},
	}

	pid, p, ok := ResolveInode(sv, table, 12345)
	if ok {
		t.Fatal("ResolveInode() ok = true, want false")
	}
	if pid != 0 || p != (model.Process{}) {
		t.Errorf("no-match result must be zero-valued, got pid=%d proc=%+v", pid, p)
	}
}

func TestResolveInodeSkipsUnreadableProcesses(t *testing.T) {
	table := map[int]model.Process{
		10: {PID: 10, Name: "locked"},
		42: {PID: 42, Name: "nginx"},
	}
	sv := &fakeView{
		fdErr: map[int]error{10: errors.New("permission denied")},
		fdLinks: map[int][]string{
			42: {"socket:[12345]"},
		},
	}

	pid, _, ok := ResolveInode(sv, table, 12345)
	if !ok || pid != 42 {
		t.Fatalf("got pid=%d ok=%v, want 42/true", pid, ok)
	}
}

func TestResolveInodeIgnoresMalformedLinks(t *testing.T) {
	table := map[int]model.Process{
		42: {PID: 42, Name: "nginx"},
	}
	sv := &fakeView{
		fdLinks: map[int][]string{
			42: {"socket:[abc]", "socket:[12345", "socket12345]", "anon_inode:[eventpoll]"},
		},
	}

	if _, _, ok := ResolveInode(sv, table, 12345); ok {
		t.Fatal("malformed links must not match")
	}
}
