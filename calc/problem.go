package calc

import "fmt"

type ProblemKind int

const (
	ExpectingSymbol ProblemKind = iota
	ExpectingKeyword
	ExpectingName
	ExpectingNumber
	InvalidNumber
	ExpectingEnd
)

// Problem is what the calculator grammar reports at a dead end.
type Problem struct {
	Kind ProblemKind
	Text string
}

func (p Problem) String() string {
	switch p.Kind {
	case ExpectingSymbol:
		return fmt.Sprintf("expecting %q", p.Text)
	case ExpectingKeyword:
		return fmt.Sprintf("expecting keyword %q", p.Text)
	case ExpectingName:
		return "expecting a name"
	case ExpectingNumber:
		return "expecting a number"
	case InvalidNumber:
		return "invalid number literal"
	case ExpectingEnd:
		return "expecting end of input"
	}
	return fmt.Sprintf("problem %d", int(p.Kind))
}

// Context names the construct being parsed when a dead end occurred.
type Context string

const (
	LetBinding    Context = "let binding"
	Parenthesised Context = "parenthesised expression"
	Exponent      Context = "exponent"
)
