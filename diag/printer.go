package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorText = color.New(color.FgRed, color.Bold)
	warnText  = color.New(color.FgYellow, color.Bold)
	lineText  = color.New(color.FgCyan)
)

// PrinterConfig controls the behavior of the printer.
type PrinterConfig struct {
	// Color controls whether severity levels and source markers are
	// colorized when printed.
	Color bool
}

// Fprint pretty-prints each diagnostic in ds to w. sources maps a filename
// to its full source text and is used to print the offending line with a
// marker underneath; diagnostics whose file is missing from sources are
// printed without source context.
func Fprint(w io.Writer, sources map[string][]byte, ds Diagnostics) error {
	p := printer{w: w, cfg: PrinterConfig{Color: true}}
	return p.print(sources, ds)
}

// FprintConfig is like Fprint with explicit printer configuration.
func FprintConfig(w io.Writer, cfg PrinterConfig, sources map[string][]byte, ds Diagnostics) error {
	p := printer{w: w, cfg: cfg}
	return p.print(sources, ds)
}

type printer struct {
	w   io.Writer
	cfg PrinterConfig
}

func (p *printer) print(sources map[string][]byte, ds Diagnostics) error {
	for i, d := range ds {
		if i > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
		if err := p.printDiagnostic(sources, d); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printDiagnostic(sources map[string][]byte, d Diagnostic) error {
	if err := p.printHeader(d); err != nil {
		return err
	}

	src, ok := sources[d.StartPos.Filename]
	if !ok || !d.StartPos.Valid() {
		return nil
	}

	lines := strings.Split(string(src), "\n")
	if d.StartPos.Line > len(lines) {
		return nil
	}
	line := lines[d.StartPos.Line-1]

	// Column counts characters, so the marker offset must too.
	offset := d.StartPos.Column - 1
	if runes := len([]rune(line)); offset > runes {
		offset = runes
	}

	width := 1
	if d.EndPos.Valid() && d.EndPos.Line == d.StartPos.Line && d.EndPos.Column > d.StartPos.Column {
		width = d.EndPos.Column - d.StartPos.Column + 1
	}

	prefix := fmt.Sprintf("%d | ", d.StartPos.Line)
	if _, err := fmt.Fprintf(p.w, "%s%s\n", p.colorize(lineText, prefix), line); err != nil {
		return err
	}

	marker := strings.Repeat(" ", len(prefix)+offset) + strings.Repeat("^", width)
	_, err := fmt.Fprintf(p.w, "%s\n", p.colorize(p.severityColor(d.Severity), marker))
	return err
}

func (p *printer) printHeader(d Diagnostic) error {
	label := "Error"
	if d.Severity == SeverityLevelWarn {
		label = "Warning"
	}

	_, err := fmt.Fprintf(p.w, "%s: %s: %s\n",
		p.colorize(p.severityColor(d.Severity), label),
		d.StartPos, d.Message,
	)
	return err
}

func (p *printer) severityColor(s Severity) *color.Color {
	if s == SeverityLevelWarn {
		return warnText
	}
	return errorText
}

func (p *printer) colorize(c *color.Color, text string) string {
	if !p.cfg.Color {
		return text
	}
	return c.Sprint(text)
}
