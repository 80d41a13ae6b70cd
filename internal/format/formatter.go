// Package format provides output formatting functionality for CLI commands.
// It renders search results, saved items, weather reports and airport
// options in several styles.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/tether-travel/tether/internal/domain"
)

// Formatter defines the interface for result formatters.
type Formatter interface {
	// FormatResults formats the results of domain d and writes them to writer.
	FormatResults(d domain.Domain, items []domain.SearchResult, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeTable displays results in a table with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeCompact displays one short line per result.
	FormatterTypeCompact FormatterType = "compact"

	// FormatterTypeJSON displays the raw results as a JSON array.
	FormatterTypeJSON FormatterType = "json"
)

// Types lists the accepted formatter names.
var Types = []FormatterType{FormatterTypeTable, FormatterTypeCompact, FormatterTypeJSON}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeCompact:
		return NewTemplateFormatter(compactTemplate)
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		return NewTableFormatter()
	}
}

// ParseType validates a formatter name.
func ParseType(s string) (FormatterType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatterTypeTable, nil
	}
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return "", fmt.Errorf("invalid format %q: must be one of %s", s, strings.Join(names, ", "))
}
