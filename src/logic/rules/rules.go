package rules

import (
	"checkerboard/src/base"
	"checkerboard/src/logic/registry"
)

type MoveKind uint8

const (
	Invalid MoveKind = iota
	Step
	Jump
)

func (k MoveKind) String() string {
	switch k {
	case Step:
		return "step"
	case Jump:
		return "jump"
	default:
		return "invalid"
	}
}

// four diagonal jump directions
var jumpDirections = [4][2]int{{2, 2}, {2, -2}, {-2, 2}, {-2, -2}}

type Result struct {
	Applied        bool
	Kind           MoveKind
	Captured       *base.Cell
	ChainAvailable bool
}

// Classify looks only at the shape of the move, never at the board.
func Classify(from, to base.Cell) MoveKind {
	dc, dr := base.Delta(from, to)
	switch {
	case base.Abs(dc) == 1 && base.Abs(dr) == 1:
		return Step
	case base.Abs(dc) == 2 && base.Abs(dr) == 2:
		return Jump
	default:
		return Invalid
	}
}

func Midpoint(from, to base.Cell) base.Cell {
	return base.Cell{Col: (from.Col + to.Col) / 2, Row: (from.Row + to.Row) / 2}
}

// IsLegal reports whether Apply would accept the move. The registry is not touched.
func IsLegal(reg *registry.Registry, from, to base.Cell) bool {
	kind, _ := check(reg, from, to)
	return kind != Invalid
}

func check(reg *registry.Registry, from, to base.Cell) (MoveKind, base.Piece) {
	mover, ok := reg.PieceAt(from)
	if !ok {
		return Invalid, base.Piece{}
	}
	kind := Classify(from, to)
	switch kind {
	case Step:
		if !landable(reg, to) {
			return Invalid, mover
		}
	case Jump:
		mid, ok := reg.PieceAt(Midpoint(from, to))
		if !ok || mid.Owner == mover.Owner || !landable(reg, to) {
			return Invalid, mover
		}
	}
	return kind, mover
}

// in bounds and empty
func landable(reg *registry.Registry, c base.Cell) bool {
	if c.Col < 0 || c.Col >= reg.Size() || c.Row < 0 || c.Row >= reg.Size() {
		return false
	}
	return reg.IsEmpty(c)
}

// Apply performs the move when legal. An illegal move returns Applied=false
// and leaves the registry untouched.
func Apply(reg *registry.Registry, from, to base.Cell) Result {
	kind, mover := check(reg, from, to)
	if kind == Invalid {
		return Result{Kind: Invalid}
	}

	res := Result{Applied: true, Kind: kind}
	reg.Remove(from)
	if kind == Jump {
		mid := Midpoint(from, to)
		reg.Remove(mid)
		res.Captured = &mid
	}
	// destination was checked empty, cannot fail
	_ = reg.Place(to, mover)

	if kind == Jump {
		res.ChainAvailable = CanCaptureMore(reg, to)
	}
	return res
}

// CanCaptureMore reports whether the piece at `at` has any capture jump.
func CanCaptureMore(reg *registry.Registry, at base.Cell) bool {
	return len(CaptureTargets(reg, at)) > 0
}

// landing cells of every capture available from `at`
func CaptureTargets(reg *registry.Registry, at base.Cell) []base.Cell {
	mover, ok := reg.PieceAt(at)
	if !ok {
		return nil
	}
	var out []base.Cell
	for _, d := range jumpDirections {
		to := at.Add(d[0], d[1])
		if !landable(reg, to) {
			continue
		}
		mid, ok := reg.PieceAt(at.Add(d[0]/2, d[1]/2))
		if ok && mid.Owner != mover.Owner {
			out = append(out, to)
		}
	}
	return out
}
