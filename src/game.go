package src

import (
	"checkerboard/src/base"
	"checkerboard/src/logic/grid"
	"checkerboard/src/logic/history"
	"checkerboard/src/logic/registry"
	"checkerboard/src/logic/rules"
	"checkerboard/src/logic/turn"
	"checkerboard/src/logx"
	"fmt"
)

// at first use Create* methods
type GameBuilder struct {
	size     int
	registry *registry.Registry
	turn     *turn.Controller
	history  *history.History
	logger   logx.Logger
}

type MoveOutcome struct {
	rules.Result
	Mover        base.Player
	TurnSwitched bool
}

func NewBuilderBoard(size int, logger logx.Logger) *GameBuilder {
	return &GameBuilder{
		size:     size,
		registry: registry.NewRegistry(size),
		turn:     turn.NewController(),
		history:  history.NewHistory(),
		logger:   logger,
	}
}

func (gb *GameBuilder) Size() int { return gb.size }

// player 1 on the first four rows, player 2 on the last four, dark cells only
func (gb *GameBuilder) CreateClassic() {
	gb.logger.Debugf("create classic game %dx%d", gb.size, gb.size)
	gb.CreateEmpty()
	for col := 0; col < gb.size; col++ {
		for row := 0; row < base.StartRows; row++ {
			gb.placeDark(base.Cell{Col: col, Row: row}, base.Player1)
		}
		for row := gb.size - base.StartRows; row < gb.size; row++ {
			gb.placeDark(base.Cell{Col: col, Row: row}, base.Player2)
		}
	}
}

func (gb *GameBuilder) placeDark(c base.Cell, p base.Player) {
	if !base.IsDarkCell(c) {
		return
	}
	if err := gb.registry.Place(c, base.Piece{Owner: p}); err != nil {
		gb.logger.Warnf("setup: %v", err)
	}
}

func (gb *GameBuilder) CreateEmpty() {
	gb.registry.Clear()
	gb.turn.Reset()
	gb.history.Reset()
}

// Place puts a piece on any cell, used for custom setups.
func (gb *GameBuilder) Place(c base.Cell, p base.Player) error {
	if err := gb.registry.Place(c, base.Piece{Owner: p}); err != nil {
		return fmt.Errorf("error place piece: %w", err)
	}
	return nil
}

func (gb *GameBuilder) Registry() *registry.Registry { return gb.registry }
func (gb *GameBuilder) Turn() *turn.Controller       { return gb.turn }
func (gb *GameBuilder) History() *history.History    { return gb.history }
func (gb *GameBuilder) CurrentPlayer() base.Player   { return gb.turn.Current() }

func (gb *GameBuilder) PieceAt(c base.Cell) (base.Piece, bool) {
	return gb.registry.PieceAt(c)
}

func (gb *GameBuilder) Grid(squareSize int) grid.Grid {
	return grid.NewGrid(gb.size, squareSize)
}

// CanSelect reports whether the current player may pick up the piece at c.
func (gb *GameBuilder) CanSelect(c base.Cell) bool {
	p, ok := gb.registry.PieceAt(c)
	if !ok || p.Owner != gb.turn.Current() {
		return false
	}
	return gb.turn.CanSelect(c)
}

// Move runs the validator and then switches the turn unless a chain
// capture is pending. A rejected move changes nothing.
func (gb *GameBuilder) Move(from, to base.Cell) MoveOutcome {
	mover := gb.turn.Current()
	out := MoveOutcome{Mover: mover}

	p, ok := gb.registry.PieceAt(from)
	if !ok || p.Owner != mover {
		gb.logger.Debugf("reject %v -> %v: no piece of %v", from, to, mover)
		return out
	}
	if chain, pending := gb.turn.ChainCell(); pending {
		if from != chain || rules.Classify(from, to) != rules.Jump {
			gb.logger.Debugf("reject %v -> %v: capture from %v pending", from, to, chain)
			return out
		}
	}

	out.Result = rules.Apply(gb.registry, from, to)
	if !out.Applied {
		gb.logger.Debugf("reject %v -> %v: illegal %v", from, to, rules.Classify(from, to))
		return out
	}

	entry := history.MoveEntry{Player: mover, From: from, To: to, Captured: out.Captured}
	gb.history.Push(entry)
	gb.logger.Infof("%v move %s", mover, entry.Notation())

	if out.ChainAvailable {
		gb.turn.MarkMoved(&to)
		gb.logger.Debugf("%v must continue capture from %v", mover, to)
		return out
	}
	gb.turn.MarkMoved(nil)
	gb.turn.SwitchTurn()
	out.TurnSwitched = true
	return out
}

// all turns so far
func (gb *GameBuilder) MovesText() string {
	return gb.history.MovesAsText()
}

// TryMove is Move for callers that only need to know whether it applied.
func (gb *GameBuilder) TryMove(from, to base.Cell) bool {
	return gb.Move(from, to).Applied
}
