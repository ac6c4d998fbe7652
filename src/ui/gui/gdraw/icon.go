package gdraw

import (
	"checkerboard/src/ui/gui/gbase"
	"image"
)

// RenderIcon draws a single piece on a dark square, for the window icon.
func RenderIcon(size int, p gbase.Palette) image.Image {
	ic := NewImageCanvas(size, size)
	ic.Fill(p.DarkSquare)
	ic.Circle(size/2, size/2, size/2-size/8, p.Player1)
	return ic.Image()
}

func RenderIcons(p gbase.Palette, sizes ...int) []image.Image {
	out := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, RenderIcon(s, p))
	}
	return out
}
