package cli

import (
	"bufio"
	"checkerboard/src"
	"checkerboard/src/base"
	"checkerboard/src/logic/registry"
	"fmt"
	"io"
	"strings"
)

type DrawFunc func(w io.Writer, reg *registry.Registry)

type CLIProcessing struct {
	builder *src.GameBuilder
	draw    DrawFunc
	in      io.Reader
	out     io.Writer
}

func NewCLI(b *src.GameBuilder, draw DrawFunc, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, in: in, out: out}
}

// line mode
// - "b4 c5", "b4-c5" or "b4xd6" to move
// - "moves" to list turns, "new" to restart
// - q to quit
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Enter a move like 'a4 b5' and press Enter. 'moves' lists turns, 'new' restarts, 'q' quits.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "q", "Q", "quit":
			return nil
		case "moves":
			fmt.Fprintln(c.out, c.builder.MovesText())
			continue
		case "new":
			c.builder.CreateClassic()
			c.redraw()
			continue
		}

		from, to, err := ParseMove(line, c.builder.Size())
		if err != nil {
			fmt.Fprintf(c.out, "Invalid input: %v\n", err)
			continue
		}
		out := c.builder.Move(from, to)
		if !out.Applied {
			fmt.Fprintf(c.out, "Invalid move: %s\n", line)
			continue
		}
		if out.ChainAvailable {
			fmt.Fprintf(c.out, "Capture again from %s\n", base.AlgebraicFromCell(to))
		}
		c.redraw()
	}
	return scanner.Err()
}

func (c *CLIProcessing) redraw() {
	c.draw(c.out, c.builder.Registry())
	c.printStatus()
}

func (c *CLIProcessing) printStatus() {
	fmt.Fprintf(c.out, "Moves: %s\n", c.builder.MovesText())
	fmt.Fprintf(c.out, "Turn: %v\n", c.builder.CurrentPlayer())
}

// ParseMove reads two squares separated by space, '-' or 'x'.
func ParseMove(s string, size int) (base.Cell, base.Cell, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '-' || r == 'x' || r == '\t'
	})
	if len(fields) != 2 {
		return base.Cell{}, base.Cell{}, fmt.Errorf("expected two squares, got %q", s)
	}
	from, err := base.CellFromAlgebraic(fields[0], size)
	if err != nil {
		return base.Cell{}, base.Cell{}, err
	}
	to, err := base.CellFromAlgebraic(fields[1], size)
	if err != nil {
		return base.Cell{}, base.Cell{}, err
	}
	return from, to, nil
}
