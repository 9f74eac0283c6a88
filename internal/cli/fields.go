package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"homeprice/internal/form"
)

// fieldsMarkdown describes the schema as a markdown table.
func fieldsMarkdown() string {
	var b strings.Builder
	b.WriteString("# Property fields\n\n")
	b.WriteString("| Key | Label | Type | Accepted values |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, f := range form.Fields {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", f.Key, f.Label, f.Kind, accepted(f))
	}
	return b.String()
}

func accepted(f form.Field) string {
	if f.Widget == form.WidgetSelect {
		opts := make([]string, len(f.Options))
		for i, o := range f.Options {
			opts[i] = strconv.Itoa(o.Value) + " " + o.Label
		}
		return strings.Join(opts, ", ")
	}
	s := num(f.Min) + " to " + num(f.Max)
	if f.Step > 0 {
		s += ", step " + num(f.Step)
	}
	return s
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func runFields(e *env, style string) error {
	opt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	out, err := r.Render(fieldsMarkdown())
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = fmt.Fprint(e.stdout, out)
	return err
}
