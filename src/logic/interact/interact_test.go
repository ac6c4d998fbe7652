package interact_test

import (
	"checkerboard/src"
	"checkerboard/src/base"
	"checkerboard/src/logic/grid"
	"checkerboard/src/logic/interact"
	"checkerboard/src/logx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(c, r int) base.Cell { return base.Cell{Col: c, Row: r} }

func newClassic(t *testing.T) (*src.GameBuilder, *interact.Handler) {
	t.Helper()
	gb := src.NewBuilderBoard(base.DefaultSize, logx.NewNop())
	gb.CreateClassic()
	return gb, interact.NewHandler(grid.NewGrid(base.DefaultSize, base.DefaultSquareSize), gb)
}

// recordingGame counts calls and accepts every move
type recordingGame struct {
	pieces map[base.Cell]base.Piece
	moves  [][2]base.Cell
}

func (g *recordingGame) PieceAt(c base.Cell) (base.Piece, bool) {
	p, ok := g.pieces[c]
	return p, ok
}

func (g *recordingGame) CanSelect(c base.Cell) bool {
	_, ok := g.pieces[c]
	return ok
}

func (g *recordingGame) TryMove(from, to base.Cell) bool {
	g.moves = append(g.moves, [2]base.Cell{from, to})
	return true
}

func TestDragAndDropStep(t *testing.T) {
	gb, h := newClassic(t)

	// (0,3) is centered at (30,210)
	h.Handle(interact.Event{Kind: interact.PointerDown, X: 35, Y: 215})
	ds, ok := h.Dragging()
	require.True(t, ok)
	assert.Equal(t, cell(0, 3), ds.From)
	assert.Equal(t, 5, ds.OffsetX)
	assert.Equal(t, 5, ds.OffsetY)
	assert.Nil(t, ds.Preview)

	h.Handle(interact.Event{Kind: interact.PointerMove, X: 95, Y: 275})
	ds, _ = h.Dragging()
	require.NotNil(t, ds.Preview)
	assert.Equal(t, cell(1, 4), *ds.Preview)

	// preview only, nothing committed yet
	_, ok = gb.PieceAt(cell(1, 4))
	assert.False(t, ok)
	x, y := h.RenderPos(cell(0, 3))
	assert.Equal(t, 90, x)
	assert.Equal(t, 270, y)

	h.Handle(interact.Event{Kind: interact.PointerUp, X: 95, Y: 275})
	_, ok = h.Dragging()
	assert.False(t, ok)

	p, ok := gb.PieceAt(cell(1, 4))
	require.True(t, ok)
	assert.Equal(t, base.Player1, p.Owner)
	assert.Equal(t, base.Player2, gb.CurrentPlayer())

	x, y = h.RenderPos(cell(1, 4))
	assert.Equal(t, 90, x)
	assert.Equal(t, 270, y)
}

func TestPointerDownOnOpponentIgnored(t *testing.T) {
	_, h := newClassic(t)
	// (1,6) is player 2
	h.Handle(interact.Event{Kind: interact.PointerDown, X: 90, Y: 390})
	_, ok := h.Dragging()
	assert.False(t, ok)
}

func TestPointerDownOnEmptyOrOffBoardIgnored(t *testing.T) {
	_, h := newClassic(t)
	h.Handle(interact.Event{Kind: interact.PointerDown, X: 30, Y: 270})
	_, ok := h.Dragging()
	assert.False(t, ok)

	h.Handle(interact.Event{Kind: interact.PointerDown, X: -10, Y: 30})
	_, ok = h.Dragging()
	assert.False(t, ok)
}

func TestPreviewRejectsNonAdjacentAndOccupied(t *testing.T) {
	_, h := newClassic(t)
	h.Handle(interact.Event{Kind: interact.PointerDown, X: 30, Y: 210})

	// two rows down
	h.Handle(interact.Event{Kind: interact.PointerMove, X: 90, Y: 330})
	ds, _ := h.Dragging()
	assert.Nil(t, ds.Preview)

	// straight down, light square
	h.Handle(interact.Event{Kind: interact.PointerMove, X: 30, Y: 270})
	ds, _ = h.Dragging()
	assert.Nil(t, ds.Preview)

	// back onto an occupied square (1,2)
	h.Handle(interact.Event{Kind: interact.PointerMove, X: 90, Y: 150})
	ds, _ = h.Dragging()
	assert.Nil(t, ds.Preview)

	x, y := h.RenderPos(cell(0, 3))
	assert.Equal(t, 30, x)
	assert.Equal(t, 210, y)
}

func TestPreviewKeptWhenPointerLeaves(t *testing.T) {
	_, h := newClassic(t)
	h.Handle(interact.Event{Kind: interact.PointerDown, X: 30, Y: 210})
	h.Handle(interact.Event{Kind: interact.PointerMove, X: 90, Y: 270})
	h.Handle(interact.Event{Kind: interact.PointerMove, X: 400, Y: 500})
	ds, _ := h.Dragging()
	require.NotNil(t, ds.Preview)
	assert.Equal(t, cell(1, 4), *ds.Preview)
}

func TestIllegalDropSnapsBack(t *testing.T) {
	gb, h := newClassic(t)
	before := gb.Registry().Clone()

	h.Handle(interact.Event{Kind: interact.PointerDown, X: 30, Y: 210})
	h.Handle(interact.Event{Kind: interact.PointerMove, X: 90, Y: 270})
	h.Handle(interact.Event{Kind: interact.PointerUp, X: 30, Y: 330})

	_, ok := h.Dragging()
	assert.False(t, ok)
	assert.True(t, gb.Registry().Equal(before))
	assert.Equal(t, base.Player1, gb.CurrentPlayer())

	x, y := h.RenderPos(cell(0, 3))
	assert.Equal(t, 30, x)
	assert.Equal(t, 210, y)
}

func TestChainCaptureContinuation(t *testing.T) {
	gb := src.NewBuilderBoard(base.DefaultSize, logx.NewNop())
	gb.CreateEmpty()
	require.NoError(t, gb.Place(cell(1, 0), base.Player1))
	require.NoError(t, gb.Place(cell(7, 0), base.Player1))
	require.NoError(t, gb.Place(cell(2, 1), base.Player2))
	require.NoError(t, gb.Place(cell(4, 3), base.Player2))
	h := interact.NewHandler(grid.NewGrid(base.DefaultSize, base.DefaultSquareSize), gb)

	// (1,0) -> (3,2)
	h.HandleAll([]interact.Event{
		{Kind: interact.PointerDown, X: 90, Y: 30},
		{Kind: interact.PointerUp, X: 210, Y: 150},
	})
	assert.Equal(t, base.Player1, gb.CurrentPlayer())

	// other piece is blocked while the chain is pending
	h.Handle(interact.Event{Kind: interact.PointerDown, X: 450, Y: 30})
	_, ok := h.Dragging()
	assert.False(t, ok)

	// (3,2) -> (5,4)
	h.HandleAll([]interact.Event{
		{Kind: interact.PointerDown, X: 210, Y: 150},
		{Kind: interact.PointerUp, X: 330, Y: 270},
	})
	assert.Equal(t, base.Player2, gb.CurrentPlayer())
	assert.Equal(t, 0, gb.Registry().Count(base.Player2))
}

func TestHandleAllStopsAtQuit(t *testing.T) {
	g := &recordingGame{pieces: map[base.Cell]base.Piece{cell(1, 0): {Owner: base.Player1}}}
	h := interact.NewHandler(grid.NewGrid(10, 60), g)

	cont := h.HandleAll([]interact.Event{
		{Kind: interact.PointerDown, X: 90, Y: 30},
		{Kind: interact.Quit},
		{Kind: interact.PointerUp, X: 150, Y: 90},
	})
	assert.False(t, cont)
	assert.Empty(t, g.moves)
	_, ok := h.Dragging()
	assert.False(t, ok)
}

func TestPointerUpWithoutDragIgnored(t *testing.T) {
	g := &recordingGame{pieces: map[base.Cell]base.Piece{}}
	h := interact.NewHandler(grid.NewGrid(10, 60), g)
	assert.True(t, h.Handle(interact.Event{Kind: interact.PointerUp, X: 90, Y: 30}))
	assert.True(t, h.Handle(interact.Event{Kind: interact.PointerMove, X: 90, Y: 30}))
	assert.Empty(t, g.moves)
}

func TestDropUsesPieceCenterNotPointer(t *testing.T) {
	g := &recordingGame{pieces: map[base.Cell]base.Piece{cell(1, 0): {Owner: base.Player1}}}
	h := interact.NewHandler(grid.NewGrid(10, 60), g)

	// grab near the right edge: offset +25
	h.Handle(interact.Event{Kind: interact.PointerDown, X: 115, Y: 30})
	// pointer is over (2,1), the piece center over (1,1)
	h.Handle(interact.Event{Kind: interact.PointerUp, X: 125, Y: 90})
	require.Len(t, g.moves, 1)
	assert.Equal(t, cell(1, 0), g.moves[0][0])
	assert.Equal(t, cell(1, 1), g.moves[0][1])
}
