package ui

import (
	"checkerboard/src"
	"checkerboard/src/logx"
	clic "checkerboard/src/ui/cli"
	"checkerboard/src/ui/gui"
	"checkerboard/src/ui/gui/gbase"
	"checkerboard/src/ui/gui/gbase/gconf"
	"checkerboard/src/ui/gui/gdialog"
	"checkerboard/src/ui/gui/gdraw"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const logfile string = "checkerboard.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// LoadConfig reads the JSON config and applies --size/--square-size on top.
func LoadConfig(c *cli.Command) (*gconf.Config, error) {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	var size, square int
	if c.IsSet("size") {
		size = int(c.Int("size"))
	}
	if c.IsSet("square-size") {
		square = int(c.Int("square-size"))
	}
	cfg.Override(size, square)
	return cfg, nil
}

// withLogger opens the log file and hands a ready logger to fn.
func withLogger(c *cli.Command, fn func(l *logx.Logx) error) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck
	return fn(logger)
}

func RunGUI(c *cli.Command) error {
	return withLogger(c, func(logger *logx.Logx) error {
		cfg, err := LoadConfig(c)
		if err != nil {
			logger.Errorf("error load config: %v", err)
			return fmt.Errorf("error load config: %w", err)
		}
		gb := src.NewBuilderBoard(cfg.Size, logger)
		gb.CreateClassic()
		err = gui.NewGUI(gb, cfg, logger).Run()
		if err != nil && !errors.Is(err, gbase.ErrExit) {
			logger.Errorf("error GUI: %v", err)
			if !c.Bool("console") {
				gdialog.ShowError(gbase.WindowTitle, err.Error())
			}
			return fmt.Errorf("error GUI: %w", err)
		}
		return nil
	})
}

func RunCLI(c *cli.Command) error {
	return withLogger(c, func(logger *logx.Logx) error {
		cfg, err := LoadConfig(c)
		if err != nil {
			return fmt.Errorf("error load config: %w", err)
		}
		gb := src.NewBuilderBoard(cfg.Size, logger)
		gb.CreateClassic()

		colored := term.IsTerminal(int(os.Stdout.Fd())) && !c.Bool("plain")
		if colored {
			clic.EnableANSI()
		}
		return clic.NewCLI(gb, clic.NewPrinter(colored), os.Stdin, os.Stdout).RunLineMode()
	})
}

// RunSnapshot renders the starting position to a PNG without opening a window.
func RunSnapshot(c *cli.Command) error {
	cfg, err := LoadConfig(c)
	if err != nil {
		return fmt.Errorf("error load config: %w", err)
	}
	gb := src.NewBuilderBoard(cfg.Size, logx.NewNop())
	gb.CreateClassic()

	g := gb.Grid(cfg.SquareSize)
	ic := gdraw.NewImageCanvas(g.ScreenSize(), g.ScreenSize())
	gdraw.NewBoardDrawer(g, gbase.PaletteFromString(cfg.Theme)).Draw(ic, gb.Registry(), nil)

	out := c.String("out")
	if err := ic.SavePNG(out); err != nil {
		return fmt.Errorf("error save snapshot: %w", err)
	}
	fmt.Printf("snapshot saved to %s\n", out)
	return nil
}

func NewCommand() *cli.Command {
	sf := &cli.IntFlag{
		Name:        "size",
		Aliases:     []string{"s"},
		Usage:       "board dimension in cells",
		DefaultText: "10",
	}
	qf := &cli.IntFlag{
		Name:        "square-size",
		Aliases:     []string{"q"},
		Usage:       "pixel edge length per cell",
		DefaultText: "60",
	}
	cfgf := &cli.StringFlag{
		Name:  "config",
		Usage: "path to JSON config",
		Value: gconf.DefaultFile,
	}
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:        "level",
		Aliases:     []string{"l"},
		Usage:       "level log",
		DefaultText: "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	pf := &cli.BoolFlag{
		Name:  "plain",
		Usage: "no ANSI colors",
	}
	of := &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "PNG output path",
		Value:   "checkerboard.png",
	}
	guiff := []cli.Flag{sf, qf, cfgf, df, lf, cf}
	cliff := []cli.Flag{sf, cfgf, df, lf, cf, pf}
	snapff := []cli.Flag{sf, qf, cfgf, of}

	return &cli.Command{
		Name:  "checkerboard",
		Usage: "two-player checkers with drag and drop",
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "play in a window",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:  "snapshot",
				Usage: "render the starting position to PNG",
				Flags: snapff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunSnapshot(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}
}

func RunCheckerboard() error {
	return NewCommand().Run(context.Background(), os.Args)
}
