package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		{ProductID: 1, UnitPrice: 10, Quantity: 2},
		{ProductID: 2, UnitPrice: 15, Quantity: 1},
	}}
	assert.Equal(t, 35.0, cart.Total())

	// Total is a pure sum of line totals: order does not matter.
	reversed := &Cart{Lines: []CartLine{cart.Lines[1], cart.Lines[0]}}
	assert.Equal(t, cart.Total(), reversed.Total())

	assert.Equal(t, 0.0, (&Cart{}).Total())
}

func TestCartLine(t *testing.T) {
	cart := &Cart{Lines: []CartLine{{ProductID: 1, Quantity: 2}}}

	line := cart.Line(1)
	assert.NotNil(t, line)
	assert.Nil(t, cart.Line(2))

	// Line returns a pointer into the cart, so edits stick.
	line.Quantity = 4
	assert.Equal(t, 4, cart.Lines[0].Quantity)
}

func TestCartRemoveLine(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		{ProductID: 1},
		{ProductID: 2},
		{ProductID: 3},
	}}

	cart.RemoveLine(2)
	assert.Len(t, cart.Lines, 2)
	assert.Nil(t, cart.Line(2))

	cart.RemoveLine(2)
	assert.Len(t, cart.Lines, 2)

	cart.RemoveLine(1)
	cart.RemoveLine(3)
	assert.True(t, cart.IsEmpty())
}
