package grid

import "checkerboard/src/base"

// Grid maps between screen pixels and board cells. Immutable.
type Grid struct {
	size       int
	squareSize int
}

func NewGrid(size, squareSize int) Grid {
	return Grid{size: size, squareSize: squareSize}
}

func (g Grid) Size() int       { return g.size }
func (g Grid) SquareSize() int { return g.squareSize }

// width == height
func (g Grid) ScreenSize() int {
	return g.size * g.squareSize
}

// no clamping, callers check InBounds
func (g Grid) PixelToCell(x, y int) base.Cell {
	return base.Cell{Col: floorDiv(x, g.squareSize), Row: floorDiv(y, g.squareSize)}
}

func (g Grid) CellCenter(c base.Cell) (int, int) {
	return c.Col*g.squareSize + g.squareSize/2, c.Row*g.squareSize + g.squareSize/2
}

// top-left pixel of the square
func (g Grid) CellOrigin(c base.Cell) (int, int) {
	return c.Col * g.squareSize, c.Row * g.squareSize
}

func (g Grid) InBounds(c base.Cell) bool {
	return c.Col >= 0 && c.Col < g.size && c.Row >= 0 && c.Row < g.size
}

func (g Grid) CellColor(c base.Cell) base.CellColor {
	if base.IsDarkCell(c) {
		return base.Dark
	}
	return base.Light
}

func (g Grid) PieceRadius() int {
	return g.squareSize/2 - 5
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
