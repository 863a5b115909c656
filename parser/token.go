package parser

import (
	"unicode"
)

// Token is an exact piece of text and the problem reported when it is
// missing.
type Token[X any] struct {
	String    string
	Expecting X
}

// Tok is shorthand for a Token literal.
func Tok[X any](text string, expecting X) Token[X] {
	return Token[X]{String: text, Expecting: expecting}
}

// TokenOf matches t.String exactly. It makes progress unless the string is
// empty.
func TokenOf[C, X any](t Token[X]) Parser[C, X, struct{}] {
	progress := t.String != ""
	return func(s State[C]) Step[C, X, struct{}] {
		offset, row, col := isSubString(t.String, s.offset, s.row, s.col, s.source)
		if offset == -1 {
			return Bad[C, X, struct{}]{Progress: false, Bag: fromState(s, t.Expecting)}
		}
		return Good[C, X, struct{}]{Progress: progress, State: s.moveTo(offset, row, col)}
	}
}

// Symbol is TokenOf under a name that reads better for punctuation.
func Symbol[C, X any](t Token[X]) Parser[C, X, struct{}] {
	return TokenOf[C, X](t)
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Keyword matches t.String only when it is not immediately followed by a
// letter, digit or underscore, so "let" does not match the start of
// "letter".
func Keyword[C, X any](t Token[X]) Parser[C, X, struct{}] {
	progress := t.String != ""
	return func(s State[C]) Step[C, X, struct{}] {
		offset, row, col := isSubString(t.String, s.offset, s.row, s.col, s.source)
		if offset == -1 || isSubChar(isIdentChar, offset, s.source) >= 0 {
			return Bad[C, X, struct{}]{Progress: false, Bag: fromState(s, t.Expecting)}
		}
		return Good[C, X, struct{}]{Progress: progress, State: s.moveTo(offset, row, col)}
	}
}

// End succeeds only when all input has been consumed.
func End[C, X any](expecting X) Parser[C, X, struct{}] {
	return func(s State[C]) Step[C, X, struct{}] {
		if s.offset == len(s.source) {
			return Good[C, X, struct{}]{Progress: false, State: s}
		}
		return Bad[C, X, struct{}]{Progress: false, Bag: fromState(s, expecting)}
	}
}

// VariableConfig describes an identifier: its first character, the
// characters after it, and the words it may not be.
type VariableConfig[X any] struct {
	Start     func(rune) bool
	Inner     func(rune) bool
	Reserved  map[string]struct{}
	Expecting X
}

// Reserved builds a reserved word set.
func Reserved(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Variable parses an identifier. A reserved word fails without progress
// even though its characters match.
func Variable[C, X any](cfg VariableConfig[X]) Parser[C, X, string] {
	return func(s State[C]) Step[C, X, string] {
		first := isSubChar(cfg.Start, s.offset, s.source)
		if first == noMatch {
			return Bad[C, X, string]{Progress: false, Bag: fromState(s, cfg.Expecting)}
		}
		var s1 State[C]
		if first == newline {
			s1 = chompHelp(cfg.Inner, s.moveTo(s.offset+1, s.row+1, 1))
		} else {
			s1 = chompHelp(cfg.Inner, s.moveTo(first, s.row, s.col+1))
		}
		name := s.source[s.offset:s1.offset]
		if _, reserved := cfg.Reserved[name]; reserved {
			return Bad[C, X, string]{Progress: false, Bag: fromState(s, cfg.Expecting)}
		}
		return Good[C, X, string]{Progress: true, Value: name, State: s1}
	}
}

// chompHelp advances s over characters matching pred.
func chompHelp[C any](pred func(rune) bool, s State[C]) State[C] {
	offset, row, col := s.offset, s.row, s.col
	for {
		switch next := isSubChar(pred, offset, s.source); next {
		case noMatch:
			return s.moveTo(offset, row, col)
		case newline:
			offset, row, col = offset+1, row+1, 1
		default:
			offset, col = next, col+1
		}
	}
}

// ChompWhile consumes characters while pred holds. It always succeeds and
// makes progress if it consumed anything.
func ChompWhile[C, X any](pred func(rune) bool) Parser[C, X, struct{}] {
	return func(s State[C]) Step[C, X, struct{}] {
		s1 := chompHelp(pred, s)
		return Good[C, X, struct{}]{Progress: s.offset < s1.offset, State: s1}
	}
}

// ChompIf consumes exactly one character matching pred.
func ChompIf[C, X any](pred func(rune) bool, expecting X) Parser[C, X, struct{}] {
	return func(s State[C]) Step[C, X, struct{}] {
		switch next := isSubChar(pred, s.offset, s.source); next {
		case noMatch:
			return Bad[C, X, struct{}]{Progress: false, Bag: fromState(s, expecting)}
		case newline:
			return Good[C, X, struct{}]{Progress: true, State: s.moveTo(s.offset+1, s.row+1, 1)}
		default:
			return Good[C, X, struct{}]{Progress: true, State: s.moveTo(next, s.row, s.col+1)}
		}
	}
}

// Spaces skips whitespace, newlines included.
func Spaces[C, X any]() Parser[C, X, struct{}] {
	return ChompWhile[C, X](unicode.IsSpace)
}

// GetChompedString runs p and produces the source text it consumed.
func GetChompedString[C, X, T any](p Parser[C, X, T]) Parser[C, X, string] {
	return func(s0 State[C]) Step[C, X, string] {
		switch step := p(s0).(type) {
		case Good[C, X, T]:
			return Good[C, X, string]{
				Progress: step.Progress,
				Value:    s0.source[s0.offset:step.State.offset],
				State:    step.State,
			}
		case Bad[C, X, T]:
			return badFrom[C, X, T, string](step, step.Progress)
		default:
			mustStep(step)
			return nil
		}
	}
}
