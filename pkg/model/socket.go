package model

type Socket struct {
	Protocol string // TCP or UDP
	Address  string // dotted quad, e.g. 0.0.0.0, 127.0.0.1
	Port     int
	State    string // LISTEN, ESTABLISHED, ... or OPEN for UDP
	Inode    uint64 // 0 means the row carries no socket
}
