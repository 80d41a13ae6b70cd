package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/domain"
)

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left or right).
	Alignment string

	// Extractor extracts the value from a row.
	Extractor func(Row) string
}

// TableFormatter formats results in a table with headers.
type TableFormatter struct {
	// HeaderColor is the color to use for headers. Empty disables color.
	HeaderColor string
}

// NewTableFormatter creates a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{HeaderColor: colors.Blue}
}

// Columns returns the table layout of d.
func Columns(d domain.Domain) []TableColumn {
	index := TableColumn{Name: "#", Width: 3, Alignment: "right", Extractor: func(r Row) string { return strconv.Itoa(r.Index) }}
	if d == domain.Itinerary {
		return []TableColumn{
			index,
			{Name: "ID", Width: 8, Extractor: func(r Row) string { return r.ID }},
			{Name: "ACTIVITY", Width: 36, Extractor: func(r Row) string { return r.Summary }},
			{Name: "PRICE", Width: 12, Alignment: "right", Extractor: func(r Row) string { return r.Price }},
			{Name: "CITY", Width: 14, Extractor: func(r Row) string { return r.City }},
		}
	}
	return []TableColumn{
		index,
		{Name: "ID", Width: 10, Extractor: func(r Row) string { return r.ID }},
		{Name: "ROUTE", Width: 16, Extractor: func(r Row) string { return r.Summary }},
		{Name: "DEPART", Width: 16, Extractor: func(r Row) string { return r.Depart }},
		{Name: "RETURN", Width: 16, Extractor: func(r Row) string { return r.Return }},
		{Name: "LEGS", Width: 4, Alignment: "right", Extractor: func(r Row) string { return r.Legs }},
		{Name: "PER PERSON", Width: 10, Alignment: "right", Extractor: func(r Row) string { return r.Price }},
	}
}

// FormatResults formats results in table format.
func (f *TableFormatter) FormatResults(d domain.Domain, items []domain.SearchResult, writer io.Writer) error {
	if len(items) == 0 {
		return nil
	}
	columns := Columns(d)

	header := make([]string, len(columns))
	rule := make([]string, len(columns))
	for i, c := range columns {
		header[i] = pad(c.Name, c.Width, c.Alignment)
		rule[i] = strings.Repeat("-", c.Width)
	}
	reset := ""
	if f.HeaderColor != "" {
		reset = colors.Reset
	}
	if _, err := fmt.Fprintf(writer, "%s%s%s\n", f.HeaderColor, strings.Join(header, "  "), reset); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "%s%s%s\n", f.HeaderColor, strings.Join(rule, "  "), reset); err != nil {
		return err
	}

	for i, item := range items {
		row := NewRow(d, i+1, item)
		cells := make([]string, len(columns))
		for j, c := range columns {
			cells[j] = pad(c.Extractor(row), c.Width, c.Alignment)
		}
		if _, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

// pad truncates or pads value to exactly width runes.
func pad(value string, width int, alignment string) string {
	n := utf8.RuneCountInString(value)
	if n > width {
		if width <= 3 {
			return string([]rune(value)[:width])
		}
		return string([]rune(value)[:width-3]) + "..."
	}
	fill := strings.Repeat(" ", width-n)
	if alignment == "right" {
		return fill + value
	}
	return value + fill
}
