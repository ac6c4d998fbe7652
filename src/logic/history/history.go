package history

import (
	"checkerboard/src/base"
	"fmt"
	"strings"
)

// append-only journal of applied moves
type History struct {
	moves []MoveEntry
}

type MoveEntry struct {
	Player   base.Player
	From     base.Cell
	To       base.Cell
	Captured *base.Cell
}

// "b1-c2" for a step, "b1xd3" for a capture
func (e MoveEntry) Notation() string {
	sep := "-"
	if e.Captured != nil {
		sep = "x"
	}
	return base.AlgebraicFromCell(e.From) + sep + base.AlgebraicFromCell(e.To)
}

func NewHistory() *History {
	return &History{moves: make([]MoveEntry, 0)}
}

func (h *History) Len() int { return len(h.moves) }

func (h *History) Moves() []MoveEntry {
	out := make([]MoveEntry, len(h.moves))
	copy(out, h.moves)
	return out
}

func (h *History) Push(e MoveEntry) {
	h.moves = append(h.moves, e)
}

func (h *History) Reset() {
	h.moves = h.moves[:0]
}

// Turns folds consecutive moves of one player (a capture chain) into a
// single token, e.g. "b1xd3xf5".
func (h *History) Turns() []string {
	var out []string
	var cur strings.Builder
	var last MoveEntry
	for i, mv := range h.moves {
		if i > 0 && mv.Player == last.Player && mv.From == last.To {
			cur.WriteString("x")
			cur.WriteString(base.AlgebraicFromCell(mv.To))
		} else {
			if i > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
			cur.WriteString(mv.Notation())
		}
		last = mv
	}
	if len(h.moves) > 0 {
		out = append(out, cur.String())
	}
	return out
}

// returned string with all turns
// example: "1. b4-c5 g7-f6 2. c5xe7"
func (h *History) MovesAsText() string {
	turns := h.Turns()
	var b strings.Builder
	for i := 0; i < len(turns); i += 2 {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%d. %s", i/2+1, turns[i]))
		if i+1 < len(turns) {
			b.WriteString(" ")
			b.WriteString(turns[i+1])
		}
	}
	return b.String()
}
