package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Convert either turns a parsed number into a result or, when that kind
// of literal is not allowed, names the problem to report.
type Convert[X, N, T any] struct {
	fn      func(N) T
	problem X
}

// Accept allows a literal kind and converts it with fn.
func Accept[X, N, T any](fn func(N) T) Convert[X, N, T] {
	return Convert[X, N, T]{fn: fn}
}

// Reject refuses a literal kind, reporting problem.
func Reject[X, N, T any](problem X) Convert[X, N, T] {
	return Convert[X, N, T]{problem: problem}
}

// Accepted reports whether the literal kind is allowed.
func (c Convert[X, N, T]) Accepted() bool {
	return c.fn != nil
}

// NumberConfig selects which numeric literals Number accepts and how each
// becomes a T.
type NumberConfig[X, T any] struct {
	Int    Convert[X, int, T]
	Hex    Convert[X, int, T]
	Octal  Convert[X, int, T]
	Binary Convert[X, int, T]
	Float  Convert[X, float64, T]

	// Invalid is reported for malformed literals, Expecting when there is
	// no literal at all.
	Invalid   X
	Expecting X
}

// Number parses a numeric literal: decimal, 0x hex, 0o octal, 0b binary or
// a float with optional fraction and exponent. Only a missing literal
// fails without progress; every other failure commits.
func Number[C, X, T any](cfg NumberConfig[X, T]) Parser[C, X, T] {
	return func(s State[C]) Step[C, X, T] {
		src := s.source
		if isAsciiCode('0', s.offset, src) {
			zeroOffset := s.offset + 1
			baseOffset := zeroOffset + 1
			switch {
			case isAsciiCode('x', zeroOffset, src):
				end, n, overflow := consumeBase16(baseOffset, src)
				return finaliseInt(cfg.Invalid, cfg.Hex, baseOffset, end, n, overflow, s)
			case isAsciiCode('o', zeroOffset, src):
				end, n, overflow := consumeBase(8, baseOffset, src)
				return finaliseInt(cfg.Invalid, cfg.Octal, baseOffset, end, n, overflow, s)
			case isAsciiCode('b', zeroOffset, src):
				end, n, overflow := consumeBase(2, baseOffset, src)
				return finaliseInt(cfg.Invalid, cfg.Binary, baseOffset, end, n, overflow, s)
			default:
				return finaliseFloat(cfg, zeroOffset, 0, false, s)
			}
		}
		end, n, overflow := consumeBase(10, s.offset, src)
		return finaliseFloat(cfg, end, n, overflow, s)
	}
}

func finaliseInt[C, X, T any](invalid X, handler Convert[X, int, T], start, end, n int, overflow bool, s State[C]) Step[C, X, T] {
	if !handler.Accepted() {
		return Bad[C, X, T]{Progress: true, Bag: fromState(s, handler.problem)}
	}
	if start == end {
		return Bad[C, X, T]{Progress: s.offset < start, Bag: fromState(s, invalid)}
	}
	if overflow {
		return Bad[C, X, T]{Progress: true, Bag: fromState(s, invalid)}
	}
	return Good[C, X, T]{Progress: true, Value: handler.fn(n), State: s.bumpOffset(end)}
}

func finaliseFloat[C, X, T any](cfg NumberConfig[X, T], intOffset, n int, overflow bool, s State[C]) Step[C, X, T] {
	floatOffset, ok := consumeDotAndExp(s.offset, intOffset, s.source)
	switch {
	case !ok:
		col := s.col + (floatOffset - s.offset)
		return Bad[C, X, T]{Progress: true, Bag: fromInfo(s.row, col, cfg.Invalid, s.context)}
	case floatOffset == s.offset:
		return Bad[C, X, T]{Progress: false, Bag: fromState(s, cfg.Expecting)}
	case floatOffset == intOffset:
		return finaliseInt(cfg.Invalid, cfg.Int, s.offset, intOffset, n, overflow, s)
	case !cfg.Float.Accepted():
		return Bad[C, X, T]{Progress: true, Bag: fromState(s, cfg.Float.problem)}
	}
	text := s.source[s.offset:floatOffset]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("parser: scanned float %q does not parse: %v", text, err))
	}
	// Underflow rounds to zero; overflow has no finite value to hand on.
	if math.IsInf(f, 0) {
		return Bad[C, X, T]{Progress: true, Bag: fromState(s, cfg.Invalid)}
	}
	return Good[C, X, T]{Progress: true, Value: cfg.Float.fn(f), State: s.bumpOffset(floatOffset)}
}

// Int parses a plain decimal integer. Hex, octal, binary and float
// literals fail with invalid.
func Int[C, X any](expecting, invalid X) Parser[C, X, int] {
	return Number[C, X, int](NumberConfig[X, int]{
		Int:       Accept[X](func(n int) int { return n }),
		Hex:       Reject[X, int, int](invalid),
		Octal:     Reject[X, int, int](invalid),
		Binary:    Reject[X, int, int](invalid),
		Float:     Reject[X, float64, int](invalid),
		Invalid:   invalid,
		Expecting: expecting,
	})
}

// Float parses a decimal integer or float literal as a float64.
func Float[C, X any](expecting, invalid X) Parser[C, X, float64] {
	return Number[C, X, float64](NumberConfig[X, float64]{
		Int:       Accept[X](func(n int) float64 { return float64(n) }),
		Hex:       Reject[X, int, float64](invalid),
		Octal:     Reject[X, int, float64](invalid),
		Binary:    Reject[X, int, float64](invalid),
		Float:     Accept[X](func(f float64) float64 { return f }),
		Invalid:   invalid,
		Expecting: expecting,
	})
}
