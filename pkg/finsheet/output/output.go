// Package output serializes parse results.
package output

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ukaji3/finsheet-go/pkg/finsheet/models"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %s (must be json or yaml)", ErrUnknownFormat, s)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// ToJSON serializes a parse result. Map keys are sorted, so equal results
// always produce identical bytes.
func ToJSON(data *models.ParsedExcelData, pretty bool) ([]byte, error) {
	return marshalJSON(data, pretty)
}

// SheetToJSON serializes a raw sheet snapshot.
func SheetToJSON(sheet *models.RawSheet, pretty bool) ([]byte, error) {
	return marshalJSON(sheet, pretty)
}

// ToYAML serializes a parse result as YAML.
func ToYAML(data *models.ParsedExcelData) ([]byte, error) {
	return yaml.Marshal(data)
}

// Encode serializes any result type in the given format.
// pretty only affects JSON.
func Encode(v any, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(v, pretty)
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
