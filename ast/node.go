package ast

import (
	"fmt"
)

// Node represents a branch or leaf of the AST. A node is built only once
// its whole syntactic form is known and never changes afterwards.
type Node struct {
	nt NodeType
	v  any
}

func newNode(nt NodeType, v any) *Node {
	return &Node{
		nt: nt,
		v:  v,
	}
}

// NewList creates and returns a node of type "list" that holds the given
// children, in order. The node takes ownership of the children.
func NewList(children ...*Node) *Node {
	return newNode(NodeTypeList, children)
}

// NewSymbol creates and returns a node of type "symbol"
func NewSymbol(text string) *Node {
	return newNode(NodeTypeSymbol, text)
}

// NewNumber creates and returns a node of type "number"
func NewNumber(v float64) *Node {
	return newNode(NodeTypeNumber, v)
}

// NewBool creates and returns a node of type "bool"
func NewBool(v bool) *Node {
	return newNode(NodeTypeBool, v)
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

func (n *Node) String() string {
	if n.IsList() {
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.v)
}

// IsAtom returns true if the node is of type symbol, number or bool
func (n *Node) IsAtom() bool {
	return n.nt&nodeTypeAtom > 0
}

// IsList returns true if the node is of type list
func (n *Node) IsList() bool {
	return n.nt&nodeTypeVector > 0
}

// Equal reports whether two trees have the same structure and hold the
// same values. NaN numbers are never equal to each other.
func Equal(a *Node, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nt != b.nt {
		return false
	}
	if a.IsList() {
		la, lb := a.List(), b.List()
		if len(la) != len(lb) {
			return false
		}
		for i := range la {
			if !Equal(la[i], lb[i]) {
				return false
			}
		}
		return true
	}
	return a.v == b.v
}
