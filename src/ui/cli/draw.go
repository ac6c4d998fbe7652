package cli

import (
	"checkerboard/src/base"
	"checkerboard/src/logic/registry"
	"fmt"
	"io"
	"strings"
)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	creamF  = "\033[97m"
	brownF  = "\033[33m"
)

// NewPrinter returns a DrawFunc; colored uses ANSI backgrounds, plain prints 1/2/. glyphs.
func NewPrinter(colored bool) DrawFunc {
	return func(w io.Writer, reg *registry.Registry) {
		PrintBoard(w, reg, colored)
	}
}

// row 0 on top, as on screen
func PrintBoard(w io.Writer, reg *registry.Registry, colored bool) {
	size := reg.Size()
	var header strings.Builder
	header.WriteString("    ")
	for col := 0; col < size; col++ {
		header.WriteString(fmt.Sprintf(" %c ", rune('a'+col)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, header.String())
	for row := 0; row < size; row++ {
		fmt.Fprintf(w, "%3d ", row+1)
		for col := 0; col < size; col++ {
			c := base.Cell{Col: col, Row: row}
			p, ok := reg.PieceAt(c)
			if !colored {
				fmt.Fprintf(w, " %s ", plainGlyph(p, ok, base.IsDarkCell(c)))
				continue
			}
			bg := lightBg
			if base.IsDarkCell(c) {
				bg = darkBg
			}
			glyph, fg := " ", ""
			if ok {
				glyph = "●"
				fg = creamF
				if p.Owner == base.Player2 {
					fg = brownF
				}
			}
			fmt.Fprintf(w, "%s%s %s %s", bg, fg, glyph, reset)
		}
		fmt.Fprintf(w, " %d\n", row+1)
	}
	fmt.Fprintln(w, header.String())
	fmt.Fprintln(w)
}

func plainGlyph(p base.Piece, ok bool, dark bool) string {
	switch {
	case ok && p.Owner == base.Player1:
		return "1"
	case ok && p.Owner == base.Player2:
		return "2"
	case dark:
		return "."
	default:
		return " "
	}
}
