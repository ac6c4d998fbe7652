package registry

import (
	"checkerboard/src/base"
	"errors"
	"fmt"
)

var (
	ErrOccupied    = errors.New("cell occupied")
	ErrOutOfBounds = errors.New("cell out of board")
)

// Registry is the only record of where pieces stand.
// Slots hold base.NoPlayer when empty, so a cell can never hold two pieces.
type Registry struct {
	size  int
	slots []base.Player
}

func NewRegistry(size int) *Registry {
	return &Registry{size: size, slots: make([]base.Player, size*size)}
}

func (r *Registry) Size() int { return r.size }

func (r *Registry) inBounds(c base.Cell) bool {
	return c.Col >= 0 && c.Col < r.size && c.Row >= 0 && c.Row < r.size
}

func (r *Registry) index(c base.Cell) int {
	return c.Row*r.size + c.Col
}

func (r *Registry) PieceAt(c base.Cell) (base.Piece, bool) {
	if !r.inBounds(c) {
		return base.Piece{}, false
	}
	owner := r.slots[r.index(c)]
	if owner == base.NoPlayer {
		return base.Piece{}, false
	}
	return base.Piece{Owner: owner}, true
}

func (r *Registry) IsEmpty(c base.Cell) bool {
	_, ok := r.PieceAt(c)
	return !ok
}

func (r *Registry) Place(c base.Cell, p base.Piece) error {
	if !r.inBounds(c) {
		return fmt.Errorf("place %v: %w", c, ErrOutOfBounds)
	}
	if !p.Owner.IsValid() {
		return fmt.Errorf("place %v: invalid owner %d", c, p.Owner)
	}
	idx := r.index(c)
	if r.slots[idx] != base.NoPlayer {
		return fmt.Errorf("place %v: %w", c, ErrOccupied)
	}
	r.slots[idx] = p.Owner
	return nil
}

// no-op when empty or off board
func (r *Registry) Remove(c base.Cell) {
	if !r.inBounds(c) {
		return
	}
	r.slots[r.index(c)] = base.NoPlayer
}

func (r *Registry) Clear() {
	for i := range r.slots {
		r.slots[i] = base.NoPlayer
	}
}

func (r *Registry) Len() int {
	n := 0
	for _, s := range r.slots {
		if s != base.NoPlayer {
			n++
		}
	}
	return n
}

func (r *Registry) Count(p base.Player) int {
	n := 0
	for _, s := range r.slots {
		if s == p {
			n++
		}
	}
	return n
}

type Entry struct {
	Cell  base.Cell
	Piece base.Piece
}

// occupied cells in row-major order
func (r *Registry) Cells() []Entry {
	out := make([]Entry, 0, r.Len())
	for i, s := range r.slots {
		if s == base.NoPlayer {
			continue
		}
		out = append(out, Entry{
			Cell:  base.Cell{Col: i % r.size, Row: i / r.size},
			Piece: base.Piece{Owner: s},
		})
	}
	return out
}

func (r *Registry) Clone() *Registry {
	cp := &Registry{size: r.size, slots: make([]base.Player, len(r.slots))}
	copy(cp.slots, r.slots)
	return cp
}

func (r *Registry) Equal(o *Registry) bool {
	if o == nil || r.size != o.size {
		return false
	}
	for i := range r.slots {
		if r.slots[i] != o.slots[i] {
			return false
		}
	}
	return true
}
