package app

import (
	"strings"

	"portsight/pkg/model"
)

// Include keeps the records whose process name, command, or working
// directory contains text, case-insensitively.
func Include(records []model.PortRecord, text string) []model.PortRecord {
	needle := strings.ToLower(text)
	var kept []model.PortRecord
	for _, r := range records {
		if matches(r, needle) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Exclude drops the records Include would keep.
func Exclude(records []model.PortRecord, text string) []model.PortRecord {
	needle := strings.ToLower(text)
	var kept []model.PortRecord
	for _, r := range records {
		if !matches(r, needle) {
			kept = append(kept, r)
		}
	}
	return kept
}

func matches(r model.PortRecord, needle string) bool {
	return strings.Contains(strings.ToLower(r.Process), needle) ||
		strings.Contains(strings.ToLower(r.Command), needle) ||
		strings.Contains(strings.ToLower(r.WorkingDir), needle)
}
