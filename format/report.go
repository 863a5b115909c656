package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/chomp/calc"
	"github.com/dhamidi/chomp/parser"
	"github.com/samber/lo"
)

// Options configures New.
type Options struct {
	Writer io.Writer
	Color  bool
}

// Frame is one entry of a context trail.
type Frame struct {
	Row     int    `json:"row" yaml:"row"`
	Col     int    `json:"col" yaml:"col"`
	Context string `json:"context" yaml:"context"`
}

// Diagnostic is a located message.
type Diagnostic struct {
	Row     int     `json:"row" yaml:"row"`
	Col     int     `json:"col" yaml:"col"`
	Message string  `json:"message" yaml:"message"`
	Context []Frame `json:"context,omitempty" yaml:"context,omitempty"`
}

// Report is the outcome of evaluating or checking one source.
type Report struct {
	File        string       `json:"file,omitempty" yaml:"file,omitempty"`
	Source      string       `json:"-" yaml:"-"`
	Value       string       `json:"value,omitempty" yaml:"value,omitempty"`
	Tree        calc.Expr    `json:"-" yaml:"-"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func (r Report) OK() bool {
	return len(r.Diagnostics) == 0
}

// FromDeadEnds converts dead ends into diagnostics, formatting problems and
// contexts with %v.
func FromDeadEnds[C, X any](des parser.DeadEnds[C, X]) []Diagnostic {
	return lo.Map(des, func(d parser.DeadEnd[C, X], _ int) Diagnostic {
		return Diagnostic{
			Row:     d.Row,
			Col:     d.Col,
			Message: fmt.Sprint(d.Problem),
			Context: lo.Map(d.ContextStack, func(l parser.Located[C], _ int) Frame {
				return Frame{Row: l.Row, Col: l.Col, Context: fmt.Sprint(l.Context)}
			}),
		}
	})
}

// Diagnose turns an error from calc.Parse, calc.Eval or calc.Evaluate into
// diagnostics. Errors without a position are reported at 1:1.
func Diagnose(err error) []Diagnostic {
	if err == nil {
		return nil
	}
	var des parser.DeadEnds[calc.Context, calc.Problem]
	if errors.As(err, &des) {
		return FromDeadEnds(des)
	}
	var evalErr *calc.EvalError
	if errors.As(err, &evalErr) {
		return []Diagnostic{{Row: evalErr.Pos.Row, Col: evalErr.Pos.Col, Message: evalErr.Msg}}
	}
	return []Diagnostic{{Row: 1, Col: 1, Message: err.Error()}}
}
