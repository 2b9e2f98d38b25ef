//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"portsight reads the Linux proc filesystem and is only supported on Linux.\n\nIf you are seeing this message, you are attempting to build or run portsight on another platform.",
	)
	os.Exit(1)
}
