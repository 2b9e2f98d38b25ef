package proc

import (
	"errors"
	"testing"

	"portsight/pkg/model"
)

func TestReadProcess(t *testing.T) {
	sv := &fakeView{
		comm:    map[int]string{42: "nginx\n"},
		cmdline: map[int]string{42: "nginx\x00-g\x00daemon off;\x00"},
		cwd:     map[int]string{42: "/srv/www"},
	}

	p := ReadProcess(sv, 42)
	if p.PID != 42 {
		t.Errorf("PID = %d, want 42", p.PID)
	}
	if p.Name != "nginx" {
		t.Errorf("Name = %q, want nginx", p.Name)
	}
	if p.Cmdline != "nginx -g daemon off;" {
		t.Errorf("Cmdline = %q, want %q", p.Cmdline, "nginx -g daemon off;")
	}
	if p.WorkingDir != "/srv/www" {
		t.Errorf("WorkingDir = %q, want /srv/www", p.WorkingDir)
	}
}

func TestReadProcessVanished(t *testing.T) {
	// A process that exited between discovery and read yields placeholders,
	// never an error.
	p := ReadProcess(&fakeView{}, 99)
	if p.Name != model.UnknownValue {
		t.Errorf("Name = %q, want %q", p.Name, model.UnknownValue)
	}
	if p.Cmdline != model.UnknownValue {
		t.Errorf("Cmdline = %q, want %q", p.Cmdline, model.UnknownValue)
	}
	if p.WorkingDir != model.UnknownValue {
		t.Errorf("WorkingDir = %q, want %q", p.WorkingDir, model.UnknownValue)
	}
}

func TestReadProcessEmptyCmdlineFallsBackToName(t *testing.T) {
	// Kernel threads expose an empty cmdline.
	sv := &fakeView{
		comm:    map[int]string{7: "kswapd0"},
		cmdline: map[int]string{7: ""},
	}

	p := ReadProcess(sv, 7)
	if p.Cmdline != "kswapd0" {
		t.Errorf("Cmdline = %q, want kswapd0", p.Cmdline)
	}
}

func TestBuildProcessTable(t *testing.T) {
	sv := &fakeView{
		pids: []int{42, 43},
		comm: map[int]string{42: "nginx", 43: "redis-server"},
	}

	table, err := BuildProcessTable(sv)
	if err != nil {
		t.Fatalf("BuildProcessTable() error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("got %d entries, want 2", len(table))
	}
	if table[42].Name != "nginx" || table[43].Name != "redis-server" {
		t.Errorf("unexpected table contents: %+v", table)
	}
}

func TestBuildProcessTableEmpty(t *testing.T) {
	table, err := BuildProcessTable(&fakeView{})
	if err != nil {
		t.Fatalf("BuildProcessTable() error: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("got %d entries, want 0", len(table))
	}
}

func TestBuildProcessTableListError(t *testing.T) {
	sv := &fakeView{pidsErr: errors.New("proc unreadable")}
	if _, err := BuildProcessTable(sv); err == nil {
		t.Fatal("expected error when the process namespace is unlistable")
	}
}
