// Package calc is a small expression language built on package parser.
//
//	program = spaces expr end
//	expr    = "let" name "=" expr "in" expr | sum
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/" | "%") unary }
//	unary   = "-" unary | power
//	power   = atom [ "^" unary ]
//	atom    = number | name | "(" expr ")"
//
// Values are exact decimals.
package calc

import (
	"unicode"

	"github.com/dhamidi/chomp/parser"
	"github.com/shopspring/decimal"
)

type p[T any] = parser.Parser[Context, Problem, T]

type unit = struct{}

var reserved = parser.Reserved("let", "in")

func spaces() p[unit] {
	return parser.Spaces[Context, Problem]()
}

// lexeme runs inner and then skips trailing whitespace.
func lexeme[T any](inner p[T]) p[T] {
	return parser.Ignore(inner, spaces())
}

func symbol(s string) p[unit] {
	return lexeme(parser.Symbol[Context](parser.Tok(s, Problem{Kind: ExpectingSymbol, Text: s})))
}

func keyword(s string) p[unit] {
	return lexeme(parser.Keyword[Context](parser.Tok(s, Problem{Kind: ExpectingKeyword, Text: s})))
}

func position() p[parser.Position] {
	return parser.GetPosition[Context, Problem]()
}

func isNameStart(r rune) bool { return unicode.IsLower(r) }

func isNameInner(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func name() p[string] {
	return lexeme(parser.Variable[Context](parser.VariableConfig[Problem]{
		Start:     isNameStart,
		Inner:     isNameInner,
		Reserved:  reserved,
		Expecting: Problem{Kind: ExpectingName},
	}))
}

var numberConfig = parser.NumberConfig[Problem, decimal.Decimal]{
	Int:       parser.Accept[Problem](fromInt),
	Hex:       parser.Accept[Problem](fromInt),
	Octal:     parser.Accept[Problem](fromInt),
	Binary:    parser.Accept[Problem](fromInt),
	Float:     parser.Accept[Problem](decimal.NewFromFloat),
	Invalid:   Problem{Kind: InvalidNumber},
	Expecting: Problem{Kind: ExpectingNumber},
}

func fromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func program() p[Expr] {
	return parser.Skip(spaces(), parser.Ignore(expr(), parser.End[Context](Problem{Kind: ExpectingEnd})))
}

func expr() p[Expr] {
	return parser.Lazy(func() p[Expr] {
		return parser.OneOf(letExpr(), sum())
	})
}

func letExpr() p[Expr] {
	return parser.InContext(LetBinding, parser.AndThen(func(at parser.Position) p[Expr] {
		return parser.AndThen(func(bound string) p[Expr] {
			return parser.Map2(func(value, body Expr) Expr {
				return &Let{At: at, Name: bound, Bound: value, Body: body}
			},
				parser.Skip(symbol("="), expr()),
				parser.Skip(keyword("in"), expr()),
			)
		}, parser.Skip(keyword("let"), name()))
	}, position()))
}

type operator struct {
	at parser.Position
	op string
}

func operatorOf(ops ...string) p[operator] {
	choices := make([]p[string], len(ops))
	for i, op := range ops {
		choices[i] = parser.Map(func(unit) string { return op }, symbol(op))
	}
	return parser.Map2(func(at parser.Position, op string) operator {
		return operator{at: at, op: op}
	}, position(), parser.OneOf(choices...))
}

// leftAssoc parses operand { op operand } and folds to the left.
func leftAssoc(operand func() p[Expr], ops ...string) p[Expr] {
	return parser.AndThen(func(first Expr) p[Expr] {
		return parser.Loop(first, func(acc Expr) p[parser.LoopStep[Expr, Expr]] {
			return parser.OneOf(
				parser.Map2(func(o operator, rhs Expr) parser.LoopStep[Expr, Expr] {
					return parser.Continue[Expr, Expr](&Binary{At: o.at, Op: o.op, L: acc, R: rhs})
				}, operatorOf(ops...), operand()),
				parser.Succeed[Context, Problem](parser.Done[Expr](acc)),
			)
		})
	}, operand())
}

func sum() p[Expr] {
	return leftAssoc(product, "+", "-")
}

func product() p[Expr] {
	return leftAssoc(unary, "*", "/", "%")
}

func unary() p[Expr] {
	return parser.OneOf(
		parser.Map2(func(at parser.Position, x Expr) Expr {
			return &Neg{At: at, X: x}
		}, parser.Ignore(position(), symbol("-")), parser.Lazy(unary)),
		power(),
	)
}

func power() p[Expr] {
	return parser.AndThen(func(base Expr) p[Expr] {
		return parser.OneOf(
			parser.Map2(func(at parser.Position, exp Expr) Expr {
				return &Binary{At: at, Op: "^", L: base, R: exp}
			}, parser.Ignore(position(), symbol("^")), parser.InContext(Exponent, parser.Lazy(unary))),
			parser.Succeed[Context, Problem](base),
		)
	}, atom())
}

func atom() p[Expr] {
	return parser.OneOf(number(), reference(), parens())
}

func number() p[Expr] {
	return lexeme(parser.Map2(func(at parser.Position, v decimal.Decimal) Expr {
		return &Num{At: at, Value: v}
	}, position(), parser.Number[Context](numberConfig)))
}

func reference() p[Expr] {
	return parser.Map2(func(at parser.Position, n string) Expr {
		return &Ref{At: at, Name: n}
	}, position(), name())
}

func parens() p[Expr] {
	return parser.InContext(Parenthesised, parser.Skip(symbol("("), parser.Ignore(expr(), symbol(")"))))
}

// Parse parses source into an expression tree. A syntax error is returned
// as parser.DeadEnds[Context, Problem].
func Parse(source string) (Expr, error) {
	return parser.Run(program(), source)
}
