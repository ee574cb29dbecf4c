// Package output serializes comparison reports for display or export.
package output

import (
	"encoding/json"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
)

// ToJSON serializes a report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// ChoicesToJSON serializes selector choices.
func ChoicesToJSON(c models.Choices, pretty bool) ([]byte, error) {
	return marshal(c, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
