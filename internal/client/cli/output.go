package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Printer renders command results as aligned text or JSON.
type Printer struct {
	format string
	writer io.Writer
}

func NewPrinter(format string, w io.Writer) *Printer {
	return &Printer{format: format, writer: w}
}

// Message prints a line of text. JSON output wraps it in {"message": ...}.
func (p *Printer) Message(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.format == OutputJSON {
		return p.JSON(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(p.writer, msg)
	return err
}

func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table prints rows under headers, or v as JSON when JSON output is selected.
func (p *Printer) Table(v any, headers []string, rows [][]string) error {
	if p.format == OutputJSON {
		return p.JSON(v)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.writer, "(none)")
		return err
	}
	tw := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

// Fields prints key/value pairs, or v as JSON.
func (p *Printer) Fields(v any, pairs ...string) error {
	if p.format == OutputJSON {
		return p.JSON(v)
	}
	tw := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(tw, "%s:\t%s\n", pairs[i], pairs[i+1])
	}
	return tw.Flush()
}
