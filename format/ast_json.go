package format

import (
	"github.com/dhamidi/chomp/calc"
)

type jsonNode struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Row      int         `json:"row" yaml:"row"`
	Col      int         `json:"col" yaml:"col"`
	Op       string      `json:"op,omitempty" yaml:"op,omitempty"`
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Value    string      `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*jsonNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func nodeToJSON(e calc.Expr) *jsonNode {
	if e == nil {
		return nil
	}
	pos := e.Pos()
	node := &jsonNode{Row: pos.Row, Col: pos.Col}
	switch n := e.(type) {
	case *calc.Num:
		node.Kind = "number"
		node.Value = n.Value.String()
	case *calc.Ref:
		node.Kind = "ref"
		node.Name = n.Name
	case *calc.Neg:
		node.Kind = "neg"
		node.Children = []*jsonNode{nodeToJSON(n.X)}
	case *calc.Binary:
		node.Kind = "binary"
		node.Op = n.Op
		node.Children = []*jsonNode{nodeToJSON(n.L), nodeToJSON(n.R)}
	case *calc.Let:
		node.Kind = "let"
		node.Name = n.Name
		node.Children = []*jsonNode{nodeToJSON(n.Bound), nodeToJSON(n.Body)}
	default:
		node.Kind = "unknown"
	}
	return node
}
