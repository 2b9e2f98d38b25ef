package output

import (
	"encoding/json"

	"portsight/pkg/model"
)

// ToJSON renders the records as an indented JSON array. An empty snapshot is
// an empty array, not null, so consumers can always iterate.
func ToJSON(records []model.PortRecord) (string, error) {
	if records == nil {
		records = []model.PortRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
