package gdraw

import (
	"checkerboard/src/base"
	"checkerboard/src/logic/grid"
	"checkerboard/src/logic/registry"
	"checkerboard/src/ui/gui/gbase"
	"image/color"
)

// Canvas is the draw surface the board is rendered onto.
type Canvas interface {
	Fill(c color.Color)
	Rect(x, y, w, h int, c color.Color)
	Circle(cx, cy, r int, c color.Color)
}

type PieceSource interface {
	Cells() []registry.Entry
}

// Positioner decides where a piece is drawn, e.g. a drag preview.
type Positioner interface {
	RenderPos(c base.Cell) (int, int)
}

// committed centers only
type gridPositioner struct{ g grid.Grid }

func (p gridPositioner) RenderPos(c base.Cell) (int, int) { return p.g.CellCenter(c) }

type BoardDrawer struct {
	grid    grid.Grid
	palette gbase.Palette
}

func NewBoardDrawer(g grid.Grid, p gbase.Palette) *BoardDrawer {
	return &BoardDrawer{grid: g, palette: p}
}

func (bd *BoardDrawer) Draw(cv Canvas, pieces PieceSource, pos Positioner) {
	if pos == nil {
		pos = gridPositioner{g: bd.grid}
	}
	cv.Fill(bd.palette.Bg)
	bd.drawSquares(cv)
	bd.drawPieces(cv, pieces, pos)
}

func (bd *BoardDrawer) drawSquares(cv Canvas) {
	sq := bd.grid.SquareSize()
	for row := 0; row < bd.grid.Size(); row++ {
		for col := 0; col < bd.grid.Size(); col++ {
			c := base.Cell{Col: col, Row: row}
			x, y := bd.grid.CellOrigin(c)
			cv.Rect(x, y, sq, sq, bd.palette.Square(bd.grid.CellColor(c)))
		}
	}
}

func (bd *BoardDrawer) drawPieces(cv Canvas, pieces PieceSource, pos Positioner) {
	radius := bd.grid.PieceRadius()
	var moved []registry.Entry
	for _, e := range pieces.Cells() {
		x, y := pos.RenderPos(e.Cell)
		if cx, cy := bd.grid.CellCenter(e.Cell); cx != x || cy != y {
			// displaced pieces go on top
			moved = append(moved, e)
			continue
		}
		cv.Circle(x, y, radius, bd.palette.Piece(e.Piece.Owner))
	}
	for _, e := range moved {
		x, y := pos.RenderPos(e.Cell)
		cv.Circle(x, y, radius, bd.palette.Piece(e.Piece.Owner))
	}
}
