package gbase

import (
	"checkerboard/src/base"
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

const WindowTitle string = "Checkerboard"

// ---- Styles (palettes) ----

type Palette struct {
	Bg          color.RGBA
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	Player1     color.RGBA
	Player2     color.RGBA
	Text        color.RGBA
}

func (p Palette) String() string {
	switch p {
	case ClassicPalette:
		return "classic"
	case WoodPalette:
		return "wood"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "wood":
		return WoodPalette
	default:
	}
	return ClassicPalette
}

func (p Palette) Square(c base.CellColor) color.RGBA {
	if c == base.Dark {
		return p.DarkSquare
	}
	return p.LightSquare
}

func (p Palette) Piece(owner base.Player) color.RGBA {
	if owner == base.Player2 {
		return p.Player2
	}
	return p.Player1
}

var ClassicPalette = Palette{
	Bg:          color.RGBA{0x00, 0x80, 0x00, 0xff}, // green
	LightSquare: color.RGBA{0xf5, 0xde, 0xb3, 0xff}, // beige
	DarkSquare:  color.RGBA{0x00, 0x00, 0x00, 0xff},
	Player1:     color.RGBA{0xff, 0xfd, 0xd0, 0xff}, // cream
	Player2:     color.RGBA{0x8b, 0x45, 0x13, 0xff}, // caramel
	Text:        color.RGBA{0xee, 0xee, 0xee, 0xff},
}

var WoodPalette = Palette{
	Bg:          color.RGBA{0x3b, 0x2a, 0x1a, 0xff},
	LightSquare: color.RGBA{0xe8, 0xc9, 0x9b, 0xff},
	DarkSquare:  color.RGBA{0x6b, 0x3e, 0x1f, 0xff},
	Player1:     color.RGBA{0xf7, 0xf3, 0xe8, 0xff},
	Player2:     color.RGBA{0x1e, 0x1e, 0x1e, 0xff},
	Text:        color.RGBA{0xff, 0xff, 0xff, 0xff},
}
