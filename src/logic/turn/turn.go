package turn

import "checkerboard/src/base"

// Controller tracks whose turn it is and whether that player has already moved.
type Controller struct {
	current  base.Player
	moveMade bool
	// piece that owes a further capture this turn
	chainAt *base.Cell
}

func NewController() *Controller {
	return &Controller{current: base.Player1}
}

func (c *Controller) Current() base.Player { return c.current }
func (c *Controller) MoveMade() bool        { return c.moveMade }

func (c *Controller) ChainCell() (base.Cell, bool) {
	if c.chainAt == nil {
		return base.Cell{}, false
	}
	return *c.chainAt, true
}

func (c *Controller) SwitchTurn() {
	c.current = c.current.Opponent()
	c.moveMade = false
	c.chainAt = nil
}

// MarkMoved records a committed move. chainAt is non-nil when the
// moved piece still has a capture to make.
func (c *Controller) MarkMoved(chainAt *base.Cell) {
	c.moveMade = true
	if chainAt != nil {
		at := *chainAt
		c.chainAt = &at
	} else {
		c.chainAt = nil
	}
}

// CanSelect blocks new selections once a move is made. Picking up the
// piece that owes a chain capture is a continuation, not a new selection.
func (c *Controller) CanSelect(cell base.Cell) bool {
	if !c.moveMade {
		return true
	}
	return c.chainAt != nil && *c.chainAt == cell
}

func (c *Controller) Reset() {
	c.current = base.Player1
	c.moveMade = false
	c.chainAt = nil
}
