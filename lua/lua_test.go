package lua

import (
	"testing"

	"github.com/atemmel/lizp2"
	"github.com/atemmel/lizp2/ast"
	"github.com/stretchr/testify/assert"
	"github.com/yuin/gopher-lua"
)

func TestFromNode(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	v := FromNode(l, lizp.MustParse(`(+ 2 3)`))

	tbl, ok := v.(*lua.LTable)
	assert.True(t, ok)
	assert.Equal(t, 3, tbl.Len())

	assert.Equal(t, lua.LString("+"), tbl.RawGetInt(1))
	assert.Equal(t, lua.LNumber(2), tbl.RawGetInt(2))
	assert.Equal(t, lua.LNumber(3), tbl.RawGetInt(3))
}

func TestFromNodeAtoms(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	assert.Equal(t, lua.LTrue, FromNode(l, ast.NewBool(true)))
	assert.Equal(t, lua.LFalse, FromNode(l, ast.NewBool(false)))
	assert.Equal(t, lua.LNumber(1.5), FromNode(l, ast.NewNumber(1.5)))
	assert.Equal(t, lua.LString("foo"), FromNode(l, ast.NewSymbol("foo")))
	assert.Equal(t, lua.LNil, FromNode(l, nil))
}

func TestNodeRoundTrip(t *testing.T) {
	testCases := []string{
		`(+ 2 3)`,
		`(+ (- 5 (* 12 7)) 3)`,
		`(true false () (a (b)))`,
		`foo`,
		`-2.5`,
	}

	l := lua.NewState()
	defer l.Close()

	for i := range testCases {
		first := lizp.MustParse(testCases[i])

		second, err := ToNode(FromNode(l, first))
		assert.NoError(t, err)
		assert.True(t, ast.Equal(first, second), "case %d: %q", i, testCases[i])
	}
}

func TestToNodeFromScript(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	err := l.DoString(`return {"+", 2, {"*", 3, 4}}`)
	assert.NoError(t, err)

	v := l.Get(-1)
	l.Pop(1)

	node, err := ToNode(v)
	assert.NoError(t, err)

	assert.True(t, ast.Equal(lizp.MustParse(`(+ 2 (* 3 4))`), node))
}

func TestToNodeUnsupported(t *testing.T) {
	l := lua.NewState()
	defer l.Close()

	err := l.DoString(`return function() end`)
	assert.NoError(t, err)

	node, convErr := ToNode(l.Get(-1))
	l.Pop(1)

	assert.Nil(t, node)
	assert.Error(t, convErr)

	node, convErr = ToNode(lua.LNil)
	assert.Nil(t, node)
	assert.Error(t, convErr)
}
