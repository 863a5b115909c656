package parser

import (
	"fmt"
	"strings"
)

// Step is the outcome of running a parser once: either Good or Bad.
type Step[C, X, T any] interface {
	step()
}

// Good is a successful step. Progress reports whether any input was consumed.
type Good[C, X, T any] struct {
	Progress bool
	Value    T
	State    State[C]
}

// Bad is a failed step. A Bad with Progress set has committed to its
// branch; one without may be discarded by an alternative.
type Bad[C, X, T any] struct {
	Progress bool
	Bag      Bag[C, X]
}

func (Good[C, X, T]) step() {}
func (Bad[C, X, T]) step()  {}

// badFrom retypes a failure so it can be propagated by a parser with a
// different result type.
func badFrom[C, X, T, U any](b Bad[C, X, T], progress bool) Bad[C, X, U] {
	return Bad[C, X, U]{Progress: progress, Bag: b.Bag}
}

// mustStep turns an unknown Step implementation into a panic. Every Step
// is either Good or Bad, so reaching it means a foreign type leaked in.
func mustStep(s any) {
	panic(fmt.Sprintf("parser: unexpected step %T", s))
}

// DeadEnd is one located failure.
type DeadEnd[C, X any] struct {
	Row          int
	Col          int
	Problem      X
	ContextStack []Located[C]
}

func (d DeadEnd[C, X]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d: %v", d.Row, d.Col, d.Problem)
	for _, c := range d.ContextStack {
		fmt.Fprintf(&sb, " (in %v at %d:%d)", c.Context, c.Row, c.Col)
	}
	return sb.String()
}

// DeadEnds is the error returned by Run when parsing fails. Entries are
// in the order they were recorded.
type DeadEnds[C, X any] []DeadEnd[C, X]

func (ds DeadEnds[C, X]) Error() string {
	switch len(ds) {
	case 0:
		return "parse failed"
	case 1:
		return ds[0].String()
	}
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}
	return fmt.Sprintf("%d dead ends: %s", len(ds), strings.Join(parts, "; "))
}

// Bag is a persistent collection of dead ends with constant time
// concatenation. It is one of Empty, AddRight or Append.
type Bag[C, X any] interface {
	bag()
}

type Empty[C, X any] struct{}

// AddRight is Bag followed by one more dead end.
type AddRight[C, X any] struct {
	Bag     Bag[C, X]
	DeadEnd DeadEnd[C, X]
}

// Append is every dead end of Left followed by every dead end of Right.
type Append[C, X any] struct {
	Left  Bag[C, X]
	Right Bag[C, X]
}

func (Empty[C, X]) bag()    {}
func (AddRight[C, X]) bag() {}
func (Append[C, X]) bag()   {}

func fromState[C, X any](s State[C], problem X) Bag[C, X] {
	return fromInfo(s.row, s.col, problem, s.context)
}

func fromInfo[C, X any](row, col int, problem X, ctx *contextNode[C]) Bag[C, X] {
	return AddRight[C, X]{
		Bag: Empty[C, X]{},
		DeadEnd: DeadEnd[C, X]{
			Row:          row,
			Col:          col,
			Problem:      problem,
			ContextStack: ctx.slice(),
		},
	}
}

// Flatten lists the dead ends of b in generation order. It walks the bag
// with an explicit stack, building the list from the right.
func Flatten[C, X any](b Bag[C, X]) DeadEnds[C, X] {
	var reversed []DeadEnd[C, X]
	pending := []Bag[C, X]{b}
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		switch v := top.(type) {
		case nil, Empty[C, X]:
		case AddRight[C, X]:
			reversed = append(reversed, v.DeadEnd)
			pending = append(pending, v.Bag)
		case Append[C, X]:
			// Right is popped first since the list grows leftwards.
			pending = append(pending, v.Left, v.Right)
		default:
			panic(fmt.Sprintf("parser: unexpected bag %T", top))
		}
	}
	out := make(DeadEnds[C, X], len(reversed))
	for i, d := range reversed {
		out[len(reversed)-1-i] = d
	}
	return out
}
