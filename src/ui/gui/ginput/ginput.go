package ginput

import "checkerboard/src/logic/interact"

// Snapshot is the raw input state read once per frame.
type Snapshot struct {
	X, Y         int
	JustPressed  bool
	JustReleased bool
	Quit         bool
}

// Translator turns per-frame snapshots into an ordered event queue.
type Translator struct {
	lastX, lastY int
	seen         bool
}

func NewTranslator() *Translator {
	return &Translator{}
}

// Events: quit first, then motion, then press and release at the current position.
func (t *Translator) Events(s Snapshot) []interact.Event {
	var out []interact.Event
	if s.Quit {
		out = append(out, interact.Event{Kind: interact.Quit})
	}
	if !t.seen || s.X != t.lastX || s.Y != t.lastY {
		out = append(out, interact.Event{Kind: interact.PointerMove, X: s.X, Y: s.Y})
		t.lastX, t.lastY, t.seen = s.X, s.Y, true
	}
	if s.JustPressed {
		out = append(out, interact.Event{Kind: interact.PointerDown, X: s.X, Y: s.Y})
	}
	if s.JustReleased {
		out = append(out, interact.Event{Kind: interact.PointerUp, X: s.X, Y: s.Y})
	}
	return out
}
