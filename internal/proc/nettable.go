package proc

import (
	"fmt"
	"strconv"
	"strings"

	"portsight/pkg/model"
)

// Protocol table names under /proc/net.
const (
	TableTCP = "tcp"
	TableUDP = "udp"
)

const tcpListen = "0A"

var tcpStates = map[string]string{
	"01": "ESTABLISHED",
	"02": "SYN_SENT",
	"03": "SYN_RECV",
	"04": "FIN_WAIT1",
	"05": "FIN_WAIT2",
	"06": "TIME_WAIT",
	"07": "CLOSE",
	"08": "CLOSE_WAIT",
	"09": "LAST_ACK",
	"0A": "LISTEN",
	"0B": "CLOSING",
}

// Config narrows a scan. SpecificPort of 0 means no port filter.
type Config struct {
	LocalhostOnly bool
	SpecificPort  int
}

// ParseSocketTable parses the text of one /proc/net table into socket
// records. The first line is a header; rows with fewer than ten fields or a
// malformed local-address column are dropped, and unparsable hex values
// default to zero rather than aborting the scan.
//
// Admission policy: with LocalhostOnly set only loopback and wildcard
// addresses pass; with SpecificPort set only that port passes. By default
// TCP output is restricted to listening sockets; UDP has no such restriction
// since UDP has no listen state. A specific-port lookup waives the TCP
// restriction so it can surface any state on that port.
func ParseSocketTable(proto, text string, cfg Config) []model.Socket {
	var sockets []model.Socket

	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			continue // header
		}
		fields := strings.Fields(line)
		if len(fields) < 10 {
			continue
		}

		local := fields[1]
		stateHex := fields[3]

		parts := strings.Split(local, ":")
		if len(parts) != 2 {
			continue
		}

		port, _ := strconv.ParseUint(parts[1], 16, 16)
		addr, _ := strconv.ParseUint(parts[0], 16, 32)

		// The kernel stores the address little-endian, so the dotted quad
		// reads low byte first.
		ip := fmt.Sprintf("%d.%d.%d.%d",
			addr&0xFF,
			(addr>>8)&0xFF,
			(addr>>16)&0xFF,
			(addr>>24)&0xFF,
		)

		if cfg.LocalhostOnly && ip != "127.0.0.1" && ip != "0.0.0.0" {
			continue
		}
		if cfg.SpecificPort != 0 && int(port) != cfg.SpecificPort {
			continue
		}

		state := "OPEN"
		if proto == TableTCP {
			var ok bool
			if state, ok = tcpStates[stateHex]; !ok {
				state = "UNKNOWN"
			}
			if stateHex != tcpListen && cfg.SpecificPort == 0 {
				continue
			}
		}

		inode, _ := strconv.ParseUint(fields[9], 10, 64)

		sockets = append(sockets, model.Socket{
			Protocol: strings.ToUpper(proto),
			Address:  ip,
			Port:     int(port),
			State:    state,
			Inode:    inode,
		})
	}

	return sockets
}
