package base

import (
	"fmt"
	"strconv"
)

const (
	DefaultSize       int = 10
	DefaultSquareSize int = 60
	// rows filled for each side at setup
	StartRows int = 4
	// smallest board where both sides fit without overlap
	MinSize int = 2 * StartRows
)

type Player uint8

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return "none"
	}
}

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (p Player) IsValid() bool {
	return p == Player1 || p == Player2
}

// no rank, no king
type Piece struct {
	Owner Player
}

type CellColor uint8

const (
	Light CellColor = 0
	Dark  CellColor = 1
)

func (c CellColor) String() string {
	if c == Dark {
		return "dark"
	}
	return "light"
}

type Cell struct {
	Col int
	Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Delta returns to - from per axis.
func Delta(from, to Cell) (int, int) {
	return to.Col - from.Col, to.Row - from.Row
}

func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func IsDarkCell(c Cell) bool {
	return Abs(c.Col+c.Row)%2 == 1
}

// Algebraic: column as a letter from 'a', row 1-based. Only meaningful for size <= 26.
func AlgebraicFromCell(c Cell) string {
	return fmt.Sprintf("%c%d", rune('a'+c.Col), c.Row+1)
}

func CellFromAlgebraic(pos string, size int) (Cell, error) {
	if len(pos) < 2 {
		return Cell{}, fmt.Errorf("invalid position %q", pos)
	}
	col := int(pos[0] - 'a')
	row, err := strconv.Atoi(pos[1:])
	if err != nil {
		return Cell{}, fmt.Errorf("invalid position %q: %w", pos, err)
	}
	c := Cell{Col: col, Row: row - 1}
	if c.Col < 0 || c.Col >= size || c.Row < 0 || c.Row >= size {
		return Cell{}, fmt.Errorf("position %q out of board", pos)
	}
	return c, nil
}
