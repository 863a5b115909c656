package lsp

import (
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/chomp/format"
	"github.com/samber/lo"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// toProtocolPosition converts a 1-based row and code point column into a
// 0-based LSP position measured in UTF-16 units.
func toProtocolPosition(lines []string, row, col int) protocol.Position {
	pos := protocol.Position{}
	if row < 1 {
		return pos
	}
	pos.Line = protocol.UInteger(row - 1)
	if row > len(lines) {
		return pos
	}
	units, i := 0, 1
	for _, r := range lines[row-1] {
		if i >= col {
			break
		}
		units += utf16.RuneLen(r)
		i++
	}
	if i < col {
		units += col - i
	}
	pos.Character = protocol.UInteger(units)
	return pos
}

// toDiagnostics converts a report into LSP diagnostics. Each range covers
// one character at the dead end.
func toDiagnostics(r format.Report) []protocol.Diagnostic {
	lines := strings.Split(r.Source, "\n")
	severity := protocol.DiagnosticSeverityError
	source := lsName

	return lo.Map(r.Diagnostics, func(d format.Diagnostic, _ int) protocol.Diagnostic {
		start := toProtocolPosition(lines, d.Row, d.Col)
		end := start
		end.Character++

		message := d.Message
		for _, f := range d.Context {
			message += "\n  in " + f.Context
		}

		return protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: &severity,
			Source:   &source,
			Message:  message,
		}
	})
}
