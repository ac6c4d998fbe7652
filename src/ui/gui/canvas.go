package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas draws straight onto the frame's screen image.
type EbitenCanvas struct {
	Screen *ebiten.Image
}

func (ec EbitenCanvas) Fill(c color.Color) {
	ec.Screen.Fill(c)
}

func (ec EbitenCanvas) Rect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(ec.Screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (ec EbitenCanvas) Circle(cx, cy, r int, c color.Color) {
	vector.DrawFilledCircle(ec.Screen, float32(cx), float32(cy), float32(r), c, true)
}
