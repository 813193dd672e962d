// Package output renders check lines, section headers and summary counts
// for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/setupcheck/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	bright = "\033[1m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor strips all ANSI sequences from subsequent output.
func DisableColor() {
	green, red, yellow, cyan, bright, reset = "", "", "", "", "", ""
}

const ruleWidth = 60

// Printer writes formatted lines to an io.Writer.
// Errors from writing are intentionally ignored for console output.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Line prints msg prefixed with the glyph for status.
func (p *Printer) Line(status check.Status, msg string) {
	color, glyph := style(status)
	_, _ = fmt.Fprintf(p.w, "%s%s %s%s\n", color, glyph, msg, reset)
}

// Detail prints msg indented under a status line.
func (p *Printer) Detail(status check.Status, msg string) {
	color, _ := style(status)
	_, _ = fmt.Fprintf(p.w, "%s  %s%s\n", color, msg, reset)
}

// Section prints a ruled section header.
func (p *Printer) Section(title string) {
	rule := strings.Repeat("=", ruleWidth)
	_, _ = fmt.Fprintf(p.w, "\n%s%s%s\n", bright, rule, reset)
	_, _ = fmt.Fprintf(p.w, "%s  %s%s\n", bright, title, reset)
	_, _ = fmt.Fprintf(p.w, "%s%s%s\n", bright, rule, reset)
}

// Banner prints the program title followed by a subtitle.
func (p *Printer) Banner(title, subtitle string) {
	_, _ = fmt.Fprintf(p.w, "\n%s%s%s\n", bright, title, reset)
	_, _ = fmt.Fprintf(p.w, "%s%s%s\n", cyan, subtitle, reset)
}

// Heading prints a single emphasized line preceded by a blank line.
func (p *Printer) Heading(title string) {
	_, _ = fmt.Fprintf(p.w, "\n%s%s%s\n", cyan, title, reset)
}

// Plain prints msg without decoration.
func (p *Printer) Plain(msg string) {
	_, _ = fmt.Fprintln(p.w, msg)
}

// Count prints a labelled counter with the value colored for status.
func (p *Printer) Count(label string, n int, status check.Status) {
	color, _ := style(status)
	_, _ = fmt.Fprintf(p.w, "%-16s%s%d%s\n", label, color, n, reset)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func style(status check.Status) (color, glyph string) {
	switch status {
	case check.StatusOK:
		return green, "✓"
	case check.StatusWarn:
		return yellow, "⚠"
	case check.StatusFail:
		return red, "✗"
	default:
		return cyan, "ℹ"
	}
}
