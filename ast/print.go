package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	if n.IsList() {
		list := n.List()
		fmt.Printf("%s(%s)[%d]:\n", indent, n.Type(), len(list))
		for i := range list {
			printLevel(list[i], level+1)
		}
		return
	}
	fmt.Printf("%s(%s): %v\n", indent, n.Type(), n.Value())
}

// Encode transforms a node into its textual representation
func Encode(n *Node) []byte {
	if n == nil {
		return []byte(":nil")
	}

	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for _, child := range n.List() {
			nodes = append(nodes, string(Encode(child)))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case NodeTypeSymbol:
		return []byte(n.Symbol())

	case NodeTypeNumber:
		return []byte(strconv.FormatFloat(n.Number(), 'g', -1, 64))

	case NodeTypeBool:
		return []byte(strconv.FormatBool(n.Bool()))

	default:
		panic("unknown node type")
	}
}
