package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/combilex/foundation/core/error"
	"github.com/msto63/combilex/pkg/core/config"
	"github.com/msto63/combilex/pkg/lexer"
)

// Options control how a report is written
type Options struct {
	Format string // text, json, yaml or debug
	Color  bool
}

// Write renders report to w in the requested format
func Write(w io.Writer, report *Report, opts Options) error {
	var err error
	switch opts.Format {
	case config.FormatText, "":
		styles := PlainStyles()
		if opts.Color {
			styles = DefaultStyles()
		}
		err = writeText(w, report, styles)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(report)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(report); err == nil {
			err = enc.Close()
		}
	case config.FormatDebug:
		err = writeDebug(w, report)
	default:
		return mdwerror.Newf("unknown output format %q", opts.Format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("render.Write")
	}

	if err != nil {
		return mdwerror.Wrap(err, "cannot write report").
			WithCode(mdwerror.CodeIOError).
			WithOperation("render.Write")
	}
	return nil
}

// writeText writes one block per input: a header, one aligned line per
// token and the match status
func writeText(w io.Writer, report *Report, s Styles) error {
	var b strings.Builder

	for i, in := range report.Inputs {
		if i > 0 {
			b.WriteString("\n")
		}
		if len(report.Inputs) > 1 || in.Name != "" {
			b.WriteString(s.Header.Render("== " + in.Name + " =="))
			b.WriteString("\n")
		}
		b.WriteString(FormatTokens(in.Tokens, s))
		b.WriteString(Status(in, s))
		b.WriteString("\n")
	}

	if len(report.Inputs) > 1 {
		matched, failed := report.Summary()
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(fmt.Sprintf("%d Eingaben: %d erkannt, %d fehlgeschlagen", matched+failed, matched, failed)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatTokens renders tokens as aligned "KIND  text" lines
func FormatTokens(tokens []lexer.Token, s Styles) string {
	width := 0
	for _, tk := range tokens {
		if n := len(tk.Kind.String()); n > width {
			width = n
		}
	}

	var b strings.Builder
	for _, tk := range tokens {
		kind := fmt.Sprintf("%-*s", width, tk.Kind.String())
		b.WriteString(s.Kind.Render(kind))
		b.WriteString("  ")
		b.WriteString(s.ForKind(tk.Kind).Render(tk.Text))
		b.WriteString("\n")
	}
	return b.String()
}

// Status renders the match status line of an input
func Status(in InputReport, s Styles) string {
	switch {
	case in.Error != "":
		return s.Failed.Render("Fehler: " + in.Error)
	case in.Matched:
		return s.Matched.Render(fmt.Sprintf("OK (%d Tokens)", len(in.Tokens)))
	default:
		return s.Failed.Render(fmt.Sprintf("keine Übereinstimmung nach %d Tokens", len(in.Tokens)))
	}
}

// writeDebug writes the plain debug listing: the match result, then one
// "TOKEN ..." line per token
func writeDebug(w io.Writer, report *Report) error {
	var b strings.Builder
	for _, in := range report.Inputs {
		if in.Error != "" {
			fmt.Fprintf(&b, "error: %s\n", in.Error)
			continue
		}
		fmt.Fprintf(&b, "%t\n", in.Matched)
		for _, tk := range in.Tokens {
			b.WriteString(tk.DebugString())
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
