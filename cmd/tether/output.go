package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/format"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// outputOptions are the --format and --template flags shared by every
// command that prints results.
type outputOptions struct {
	format   string
	template string
}

func addOutputFlags(c *cobra.Command) *outputOptions {
	o := &outputOptions{}
	c.Flags().StringVarP(&o.format, "format", "f", string(format.FormatterTypeTable), "Output format: table, compact or json")
	c.Flags().StringVar(&o.template, "template", "", "Print one line per result from a template, e.g. '{{index}} {{route}} {{price}}'")
	return o
}

// formatter picks the formatter for w. Table headers are colored only on a
// terminal.
func (o *outputOptions) formatter(w io.Writer) (format.Formatter, error) {
	if o.template != "" {
		if _, err := format.ParseTemplate(o.template); err != nil {
			return nil, err
		}
		return format.NewTemplateFormatter(o.template), nil
	}
	t, err := format.ParseType(o.format)
	if err != nil {
		return nil, err
	}
	if t == format.FormatterTypeTable {
		table := format.NewTableFormatter()
		if !isTerminal(w) {
			table.HeaderColor = ""
		}
		return table, nil
	}
	return format.NewFormatter(t), nil
}

func (o *outputOptions) print(c *cobra.Command, d domain.Domain, items []domain.SearchResult) error {
	f, err := o.formatter(c.OutOrStdout())
	if err != nil {
		return err
	}
	return f.FormatResults(d, items, c.OutOrStdout())
}

// savableDomainArg parses a flights|itinerary argument.
func savableDomainArg(s string) (domain.Domain, error) {
	d, err := domain.ParseDomain(s)
	if err != nil {
		return "", err
	}
	if !d.Savable() {
		return "", fmt.Errorf("%s results are not kept: use flights or itinerary", d)
	}
	return d, nil
}
