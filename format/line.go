package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// LineEncoder writes one "file:row:col: message" line per diagnostic,
// followed by its context trail and the source line with a caret under
// the column.
type LineEncoder struct {
	w      io.Writer
	report Report

	location *color.Color
	message  *color.Color
	trail    *color.Color
	caret    *color.Color
	value    *color.Color
}

func NewLineEncoder(w io.Writer, useColor bool) *LineEncoder {
	e := &LineEncoder{
		w:        w,
		location: color.New(color.Bold),
		message:  color.New(color.FgRed),
		trail:    color.New(color.Faint),
		caret:    color.New(color.FgGreen, color.Bold),
		value:    color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{e.location, e.message, e.trail, e.caret, e.value} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return e
}

func (e *LineEncoder) Encode(report Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	if r.OK() {
		if r.Value != "" {
			fmt.Fprintln(&sb, e.value.Sprint(r.Value))
		}
		return []byte(sb.String()), nil
	}

	lines := strings.Split(r.Source, "\n")
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&sb, "%s %s\n", e.location.Sprint(e.locationOf(d)+":"), e.message.Sprint(d.Message))
		for _, f := range d.Context {
			fmt.Fprintln(&sb, e.trail.Sprintf("    in %s at %d:%d", f.Context, f.Row, f.Col))
		}
		if d.Row >= 1 && d.Row <= len(lines) {
			line := strings.TrimRight(lines[d.Row-1], "\r")
			fmt.Fprintf(&sb, "  %s\n", line)
			fmt.Fprintf(&sb, "  %s%s\n", caretPadding(line, d.Col), e.caret.Sprint("^"))
		}
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) locationOf(d Diagnostic) string {
	if e.report.File != "" {
		return fmt.Sprintf("%s:%d:%d", e.report.File, d.Row, d.Col)
	}
	return fmt.Sprintf("%d:%d", d.Row, d.Col)
}

// caretPadding returns the whitespace that puts a caret under column col
// of line, keeping tabs and honouring wide characters.
func caretPadding(line string, col int) string {
	var sb strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		i++
	}
	if i < col {
		sb.WriteString(strings.Repeat(" ", col-i))
	}
	return sb.String()
}
