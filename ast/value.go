package ast

// Value returns the underlying value of the node: a []*Node for lists, a
// string for symbols, a float64 for numbers and a bool for bools.
func (n *Node) Value() any {
	return n.v
}

// Symbol returns the text of a symbol node
func (n *Node) Symbol() string {
	return n.v.(string)
}

// Number returns the value of a number node
func (n *Node) Number() float64 {
	return n.v.(float64)
}

// Bool returns the value of a bool node
func (n *Node) Bool() bool {
	return n.v.(bool)
}
