package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeValue(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out any
	}{
		{NewSymbol("foo"), "foo"},
		{NewNumber(1.5), float64(1.5)},
		{NewBool(false), false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.Value())
	}
}

func TestValueAccessors(t *testing.T) {
	assert.Equal(t, "foo", NewSymbol("foo").Symbol())
	assert.Equal(t, float64(12), NewNumber(12).Number())
	assert.Equal(t, true, NewBool(true).Bool())
}

func TestValueAccessorMismatch(t *testing.T) {
	assert.Panics(t, func() {
		NewSymbol("a").Number()
	})
	assert.Panics(t, func() {
		NewNumber(1).Symbol()
	})
	assert.Panics(t, func() {
		NewBool(true).List()
	})
}
