// Package lua converts parsed trees to and from gopher-lua values so that
// Lua-scripted hosts can consume them.
package lua

import (
	"fmt"

	"github.com/atemmel/lizp2/ast"
	"github.com/yuin/gopher-lua"
)

// FromNode converts a tree into a Lua value: bools and numbers map to
// their Lua counterparts, symbols map to strings and lists map to tables
// (array part, order preserved). A nil node maps to LNil.
func FromNode(l *lua.LState, n *ast.Node) lua.LValue {
	if n == nil {
		return lua.LNil
	}

	switch n.Type() {
	case ast.NodeTypeBool:
		return lua.LBool(n.Bool())

	case ast.NodeTypeNumber:
		return lua.LNumber(n.Number())

	case ast.NodeTypeSymbol:
		return lua.LString(n.Symbol())

	case ast.NodeTypeList:
		tbl := l.NewTable()
		for _, child := range n.List() {
			tbl.Append(FromNode(l, child))
		}
		return tbl

	default:
		panic("unknown node type")
	}
}

// ToNode converts a Lua value shaped like the output of FromNode back into
// a tree. Only booleans, numbers, strings and the array part of tables
// have a tree counterpart; anything else produces an error.
func ToNode(v lua.LValue) (*ast.Node, error) {
	switch lv := v.(type) {
	case lua.LBool:
		return ast.NewBool(bool(lv)), nil

	case lua.LNumber:
		return ast.NewNumber(float64(lv)), nil

	case lua.LString:
		return ast.NewSymbol(string(lv)), nil

	case *lua.LTable:
		children := []*ast.Node{}
		for i := 1; i <= lv.Len(); i++ {
			child, err := ToNode(lv.RawGetInt(i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return ast.NewList(children...), nil

	default:
		return nil, fmt.Errorf("cannot convert %s to a node", v.Type())
	}
}
