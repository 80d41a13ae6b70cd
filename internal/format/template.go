package format

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tether-travel/tether/internal/domain"
)

const compactTemplate = "{{index}}. {{summary}}  {{price}}"

var variablePattern = regexp.MustCompile(`\{\{([a-z0-9-]+)\}\}`)

// resolvers maps each template variable to its value in a row.
var resolvers = map[string]func(Row) string{
	"index":   func(r Row) string { return strconv.Itoa(r.Index) },
	"id":      func(r Row) string { return r.ID },
	"summary": func(r Row) string { return r.Summary },
	"route":   func(r Row) string { return r.Summary },
	"name":    func(r Row) string { return r.Summary },
	"depart":  func(r Row) string { return r.Depart },
	"return":  func(r Row) string { return r.Return },
	"legs":    func(r Row) string { return r.Legs },
	"price":   func(r Row) string { return r.Price },
	"city":    func(r Row) string { return r.City },
}

// Variables lists the names a template may use, sorted.
func Variables() []string {
	names := make([]string, 0, len(resolvers))
	for name := range resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTemplate returns the variables found in template, without duplicates.
// Unknown variables and unbalanced delimiters are errors.
func ParseTemplate(template string) ([]string, error) {
	if open, closing := strings.Count(template, "{{"), strings.Count(template, "}}"); open != closing {
		return nil, fmt.Errorf("mismatched variable delimiters: %d opens, %d closes", open, closing)
	}
	seen := make(map[string]bool)
	vars := []string{}
	for _, match := range variablePattern.FindAllStringSubmatch(template, -1) {
		name := match[1]
		if _, ok := resolvers[name]; !ok {
			return nil, fmt.Errorf("unknown variable %q: available variables are %s", name, strings.Join(Variables(), ", "))
		}
		if !seen[name] {
			seen[name] = true
			vars = append(vars, name)
		}
	}
	return vars, nil
}

// Substitute replaces every variable of template with its value in row.
func Substitute(template string, row Row) string {
	return variablePattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-2]
		if resolve, ok := resolvers[name]; ok {
			return resolve(row)
		}
		return match
	})
}

// TemplateFormatter writes one line per result from a {{variable}} template.
type TemplateFormatter struct {
	template string
}

// NewTemplateFormatter creates a formatter for template. Validate it with
// ParseTemplate first; unknown variables are written as is.
func NewTemplateFormatter(template string) *TemplateFormatter {
	return &TemplateFormatter{template: template}
}

// FormatResults formats results with the template.
func (f *TemplateFormatter) FormatResults(d domain.Domain, items []domain.SearchResult, writer io.Writer) error {
	for i, item := range items {
		line := strings.TrimRight(Substitute(f.template, NewRow(d, i+1, item)), " ")
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}
