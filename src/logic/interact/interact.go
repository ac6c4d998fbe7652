package interact

import (
	"checkerboard/src/base"
	"checkerboard/src/logic/grid"
)

type EventKind uint8

const (
	Quit EventKind = iota
	PointerDown
	PointerUp
	PointerMove
)

func (k EventKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind EventKind
	X, Y int
}

// Game is what the handler needs from the game state.
type Game interface {
	PieceAt(c base.Cell) (base.Piece, bool)
	CanSelect(c base.Cell) bool
	TryMove(from, to base.Cell) bool
}

// DragState lives from pointer-down to pointer-up.
type DragState struct {
	From base.Cell
	// pointer minus piece center at pick-up
	OffsetX, OffsetY int
	// provisional square shown while dragging, never committed
	Preview *base.Cell
}

type Handler struct {
	grid grid.Grid
	game Game
	drag *DragState
}

func NewHandler(g grid.Grid, game Game) *Handler {
	return &Handler{grid: g, game: game}
}

func (h *Handler) Dragging() (DragState, bool) {
	if h.drag == nil {
		return DragState{}, false
	}
	return *h.drag, true
}

// Handle processes one event to completion. Returns false on Quit.
func (h *Handler) Handle(ev Event) bool {
	switch ev.Kind {
	case Quit:
		h.drag = nil
		return false
	case PointerDown:
		h.pointerDown(ev.X, ev.Y)
	case PointerMove:
		h.pointerMove(ev.X, ev.Y)
	case PointerUp:
		h.pointerUp(ev.X, ev.Y)
	}
	return true
}

// HandleAll drains a frame's events in order. Returns false once Quit is seen.
func (h *Handler) HandleAll(events []Event) bool {
	for _, ev := range events {
		if !h.Handle(ev) {
			return false
		}
	}
	return true
}

func (h *Handler) pointerDown(x, y int) {
	if h.drag != nil {
		return
	}
	c := h.grid.PixelToCell(x, y)
	if !h.grid.InBounds(c) || !h.game.CanSelect(c) {
		return
	}
	cx, cy := h.grid.CellCenter(c)
	h.drag = &DragState{From: c, OffsetX: x - cx, OffsetY: y - cy}
}

// cell under the dragged piece's center
func (h *Handler) target(x, y int) base.Cell {
	return h.grid.PixelToCell(x-h.drag.OffsetX, y-h.drag.OffsetY)
}

func (h *Handler) pointerMove(x, y int) {
	if h.drag == nil {
		return
	}
	c := h.target(x, y)
	if !isAdjacent(h.drag.From, c) || !h.grid.InBounds(c) || h.grid.CellColor(c) != base.Dark {
		return
	}
	if _, occupied := h.game.PieceAt(c); occupied {
		return
	}
	h.drag.Preview = &c
}

func (h *Handler) pointerUp(x, y int) {
	if h.drag == nil {
		return
	}
	from, to := h.drag.From, h.target(x, y)
	h.drag = nil
	h.game.TryMove(from, to)
}

func isAdjacent(a, b base.Cell) bool {
	dc, dr := base.Delta(a, b)
	return base.Abs(dc) == 1 && base.Abs(dr) == 1
}

// RenderPos is where the piece at c is drawn this frame: the preview
// center while it is dragged, its own center otherwise.
func (h *Handler) RenderPos(c base.Cell) (int, int) {
	if h.drag != nil && h.drag.From == c && h.drag.Preview != nil {
		return h.grid.CellCenter(*h.drag.Preview)
	}
	return h.grid.CellCenter(c)
}
