package calc

import (
	"fmt"
	"maps"

	"github.com/dhamidi/chomp/parser"
	"github.com/shopspring/decimal"
)

// Env maps names to values.
type Env map[string]decimal.Decimal

// EvalError is a runtime error located at the expression that caused it.
type EvalError struct {
	Pos parser.Position
	Msg string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Row, e.Pos.Col, e.Msg)
}

// DivisionPrecision is the number of decimal places kept by / and by
// powers with fractional or negative exponents.
const DivisionPrecision = 16

// MaxExponent bounds the magnitude of the right operand of ^.
const MaxExponent = 10000

// maxPowerDigits bounds the integer digits of a power's result.
const maxPowerDigits = 100000

var maxExponent = decimal.NewFromInt(MaxExponent)

// Eval evaluates e with the names in env in scope.
func Eval(e Expr, env Env) (decimal.Decimal, error) {
	switch n := e.(type) {
	case *Num:
		return n.Value, nil
	case *Ref:
		v, ok := env[n.Name]
		if !ok {
			return decimal.Zero, &EvalError{Pos: n.At, Msg: fmt.Sprintf("undefined name %q", n.Name)}
		}
		return v, nil
	case *Neg:
		x, err := Eval(n.X, env)
		if err != nil {
			return decimal.Zero, err
		}
		return x.Neg(), nil
	case *Let:
		bound, err := Eval(n.Bound, env)
		if err != nil {
			return decimal.Zero, err
		}
		inner := maps.Clone(env)
		if inner == nil {
			inner = Env{}
		}
		inner[n.Name] = bound
		return Eval(n.Body, inner)
	case *Binary:
		l, err := Eval(n.L, env)
		if err != nil {
			return decimal.Zero, err
		}
		r, err := Eval(n.R, env)
		if err != nil {
			return decimal.Zero, err
		}
		return binary(n, l, r)
	}
	return decimal.Zero, fmt.Errorf("calc: unknown expression %T", e)
}

func binary(n *Binary, l, r decimal.Decimal) (decimal.Decimal, error) {
	switch n.Op {
	case "+":
		return l.Add(r), nil
	case "-":
		return l.Sub(r), nil
	case "*":
		return l.Mul(r), nil
	case "/", "%":
		if r.IsZero() {
			return decimal.Zero, &EvalError{Pos: n.At, Msg: "division by zero"}
		}
		if n.Op == "%" {
			return l.Mod(r), nil
		}
		return l.DivRound(r, DivisionPrecision), nil
	case "^":
		if r.Abs().GreaterThan(maxExponent) {
			return decimal.Zero, &EvalError{Pos: n.At, Msg: "exponent out of range"}
		}
		if digits := int64(l.NumDigits()) + int64(l.Exponent()); digits*r.Abs().Ceil().IntPart() > maxPowerDigits {
			return decimal.Zero, &EvalError{Pos: n.At, Msg: "power too large"}
		}
		v, err := l.PowWithPrecision(r, DivisionPrecision)
		if err != nil {
			return decimal.Zero, &EvalError{Pos: n.At, Msg: err.Error()}
		}
		return v, nil
	}
	return decimal.Zero, &EvalError{Pos: n.At, Msg: fmt.Sprintf("unknown operator %q", n.Op)}
}

// Evaluate parses and evaluates source.
func Evaluate(source string, env Env) (decimal.Decimal, error) {
	e, err := Parse(source)
	if err != nil {
		return decimal.Zero, err
	}
	return Eval(e, env)
}
