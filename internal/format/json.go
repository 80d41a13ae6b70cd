package format

import (
	"encoding/json"
	"io"

	"github.com/tether-travel/tether/internal/domain"
)

// JSONFormatter writes results exactly as received, as an indented JSON array.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatResults formats results in JSON format.
func (f *JSONFormatter) FormatResults(_ domain.Domain, items []domain.SearchResult, writer io.Writer) error {
	if items == nil {
		items = []domain.SearchResult{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = writer.Write(data)
	return err
}
