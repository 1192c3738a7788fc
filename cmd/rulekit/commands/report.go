package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// report is the result of one validate invocation.
type report struct {
	Target    string           `json:"target"`
	Valid     bool             `json:"valid"`
	Documents []documentReport `json:"documents"`
}

type documentReport struct {
	Source string       `json:"source"`
	Index  int          `json:"index"`
	Valid  bool         `json:"valid"`
	Errors []fieldError `json:"errors,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

func newDocumentReport(d document, res validator.Result[map[string]any]) documentReport {
	entry := documentReport{Source: d.source, Index: d.index, Valid: res.Success}
	for _, e := range res.Failures() {
		entry.Errors = append(entry.Errors, fieldError{
			Field:   e.PropertyName,
			Rule:    e.RuleName,
			Message: e.Message,
			Value:   e.Value,
		})
	}
	return entry
}

// targetInfo describes one declared target for the targets command.
type targetInfo struct {
	Name   string      `json:"name"`
	Fields []fieldInfo `json:"fields"`
}

type fieldInfo struct {
	Name  string   `json:"name"`
	Label string   `json:"label,omitempty"`
	Rules []string `json:"rules"`
}

// reporter writes command results as colored text or indented JSON.
type reporter struct {
	out     io.Writer
	jsonOut bool
}

func newReporter(out io.Writer, jsonOut bool) *reporter {
	return &reporter{out: out, jsonOut: jsonOut}
}

func (r *reporter) encode(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func (r *reporter) validation(rep report) error {
	if r.jsonOut {
		return r.encode(rep)
	}

	invalid := 0
	for _, d := range rep.Documents {
		name := fmt.Sprintf("%s#%d", d.Source, d.Index)
		if d.Valid {
			fmt.Fprintf(r.out, "%s %s\n", color.GreenString("✓"), name)
			continue
		}
		invalid++
		fmt.Fprintf(r.out, "%s %s\n", color.RedString("✗"), name)
		for _, e := range d.Errors {
			r.printFieldError(e)
		}
	}

	fmt.Fprintln(r.out)
	if rep.Valid {
		fmt.Fprintln(r.out, color.GreenString("%d document(s) valid against %s", len(rep.Documents), rep.Target))
		return nil
	}
	fmt.Fprintf(r.out, "Validation failed: %s of %d against %s\n",
		color.RedString("%d document(s)", invalid), len(rep.Documents), rep.Target)
	return nil
}

func (r *reporter) printFieldError(e fieldError) {
	var sb strings.Builder
	sb.WriteString("  • ")
	if e.Field != "" {
		sb.WriteString(color.New(color.FgRed).Sprint(e.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	sb.WriteString(color.New(color.FgHiBlack).Sprintf(" (%s)", e.Rule))

	if e.Value != nil {
		val := fmt.Sprintf("%v", e.Value)
		if len(val) > 50 {
			val = val[:47] + "..."
		}
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", val))
	}
	fmt.Fprintln(r.out, sb.String())
}

func (r *reporter) rules(names []string) error {
	if r.jsonOut {
		return r.encode(names)
	}
	for _, name := range names {
		fmt.Fprintln(r.out, name)
	}
	return nil
}

func (r *reporter) targets(targets []targetInfo) error {
	if r.jsonOut {
		return r.encode(targets)
	}
	if len(targets) == 0 {
		fmt.Fprintln(r.out, color.YellowString("no targets declared"))
		return nil
	}
	for _, t := range targets {
		fmt.Fprintln(r.out, color.New(color.Bold).Sprint(t.Name))
		for _, f := range t.Fields {
			name := f.Name
			if f.Label != "" && f.Label != f.Name {
				name = fmt.Sprintf("%s (%s)", f.Name, f.Label)
			}
			fmt.Fprintf(r.out, "  %s: %s\n", name, strings.Join(f.Rules, ", "))
		}
	}
	return nil
}
