package gdraw

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// ImageCanvas renders offscreen with gg, for snapshots and icons.
type ImageCanvas struct {
	dc *gg.Context
}

func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{dc: gg.NewContext(w, h)}
}

func (ic *ImageCanvas) Fill(c color.Color) {
	ic.dc.SetColor(c)
	ic.dc.Clear()
}

func (ic *ImageCanvas) Rect(x, y, w, h int, c color.Color) {
	ic.dc.SetColor(c)
	ic.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	ic.dc.Fill()
}

func (ic *ImageCanvas) Circle(cx, cy, r int, c color.Color) {
	ic.dc.SetColor(c)
	ic.dc.DrawCircle(float64(cx), float64(cy), float64(r))
	ic.dc.Fill()
}

func (ic *ImageCanvas) Image() image.Image {
	return ic.dc.Image()
}

func (ic *ImageCanvas) SavePNG(path string) error {
	return ic.dc.SavePNG(path)
}
