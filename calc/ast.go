package calc

import (
	"fmt"

	"github.com/dhamidi/chomp/parser"
	"github.com/shopspring/decimal"
)

// Expr is a node of the expression tree.
type Expr interface {
	Pos() parser.Position
	String() string
}

type Num struct {
	At    parser.Position
	Value decimal.Decimal
}

// Ref is a reference to a let-bound or predefined name.
type Ref struct {
	At   parser.Position
	Name string
}

type Neg struct {
	At parser.Position
	X  Expr
}

// Binary is L Op R where Op is one of + - * / % ^.
type Binary struct {
	At   parser.Position
	Op   string
	L, R Expr
}

// Let binds Name to Bound while evaluating Body.
type Let struct {
	At    parser.Position
	Name  string
	Bound Expr
	Body  Expr
}

func (n *Num) Pos() parser.Position    { return n.At }
func (n *Ref) Pos() parser.Position    { return n.At }
func (n *Neg) Pos() parser.Position    { return n.At }
func (n *Binary) Pos() parser.Position { return n.At }
func (n *Let) Pos() parser.Position    { return n.At }

func (n *Num) String() string { return n.Value.String() }
func (n *Ref) String() string { return n.Name }
func (n *Neg) String() string { return fmt.Sprintf("(-%s)", n.X) }

func (n *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.L, n.Op, n.R)
}

func (n *Let) String() string {
	return fmt.Sprintf("(let %s = %s in %s)", n.Name, n.Bound, n.Body)
}
