package gui

import (
	"checkerboard/src"
	"checkerboard/src/logic/grid"
	"checkerboard/src/logic/interact"
	"checkerboard/src/logx"
	"checkerboard/src/ui/gui/gbase"
	"checkerboard/src/ui/gui/gbase/gconf"
	"checkerboard/src/ui/gui/gdraw"
	"checkerboard/src/ui/gui/ginput"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type GUIProcessing struct {
	builder *src.GameBuilder
	grid    grid.Grid
	handler *interact.Handler
	input   *ginput.Translator
	drawer  *gdraw.BoardDrawer
	config  *gconf.Config
	theme   gbase.Palette
	logx    logx.Logger
}

func NewGUI(b *src.GameBuilder, cfg *gconf.Config, logx logx.Logger) *GUIProcessing {
	g := b.Grid(cfg.SquareSize)
	theme := gbase.PaletteFromString(cfg.Theme)
	return &GUIProcessing{
		builder: b,
		grid:    g,
		handler: interact.NewHandler(g, b),
		input:   ginput.NewTranslator(),
		drawer:  gdraw.NewBoardDrawer(g, theme),
		config:  cfg,
		theme:   theme,
		logx:    logx,
	}
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowIcon(gdraw.RenderIcons(gp.theme, 16, 32, 48))
	ebiten.SetWindowSize(gp.grid.ScreenSize(), gp.grid.ScreenSize())
	ebiten.SetWindowTitle(gbase.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(gp.config.TPS)
	gp.logx.Infof("start window %dx%d at %d TPS", gp.grid.ScreenSize(), gp.grid.ScreenSize(), gp.config.TPS)
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) snapshot() ginput.Snapshot {
	x, y := ebiten.CursorPosition()
	return ginput.Snapshot{
		X:            x,
		Y:            y,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Quit:         ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (gp *GUIProcessing) Update() error {
	if !gp.handler.HandleAll(gp.input.Events(gp.snapshot())) {
		gp.logx.Info("quit requested")
		return gbase.ErrExit
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.drawer.Draw(EbitenCanvas{Screen: screen}, gp.builder.Registry(), gp.handler)

	if gp.config.Debug {
		msg := fmt.Sprintf("TPS: %0.2f  turn: %v", ebiten.ActualTPS(), gp.builder.CurrentPlayer())
		if ds, ok := gp.handler.Dragging(); ok {
			msg += fmt.Sprintf("  drag: %v", ds.From)
		}
		text.Draw(screen, msg, basicfont.Face7x13, 4, 14, gp.theme.Text)
	}
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.grid.ScreenSize(), gp.grid.ScreenSize()
}
