package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerOpponent(t *testing.T) {
	assert.Equal(t, Player2, Player1.Opponent())
	assert.Equal(t, Player1, Player2.Opponent())
	assert.Equal(t, NoPlayer, NoPlayer.Opponent())
	assert.False(t, NoPlayer.IsValid())
}

func TestIsDarkCell(t *testing.T) {
	assert.True(t, IsDarkCell(Cell{Col: 1, Row: 0}))
	assert.True(t, IsDarkCell(Cell{Col: 0, Row: 1}))
	assert.False(t, IsDarkCell(Cell{Col: 0, Row: 0}))
	assert.False(t, IsDarkCell(Cell{Col: 3, Row: 5}))
	assert.True(t, IsDarkCell(Cell{Col: -1, Row: 0}))
}

func TestAlgebraic(t *testing.T) {
	assert.Equal(t, "b1", AlgebraicFromCell(Cell{Col: 1, Row: 0}))
	assert.Equal(t, "j10", AlgebraicFromCell(Cell{Col: 9, Row: 9}))

	c, err := CellFromAlgebraic("j10", 10)
	require.NoError(t, err)
	assert.Equal(t, Cell{Col: 9, Row: 9}, c)

	_, err = CellFromAlgebraic("k1", 10)
	assert.Error(t, err)
	_, err = CellFromAlgebraic("a0", 10)
	assert.Error(t, err)
	_, err = CellFromAlgebraic("a1x", 10)
	assert.Error(t, err)
	_, err = CellFromAlgebraic("a", 10)
	assert.Error(t, err)
}
