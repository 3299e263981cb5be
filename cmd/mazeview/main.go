package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/pflag"

	"github.com/pdrpinto/mazepath/internal/app"
	"github.com/pdrpinto/mazepath/internal/config"
	"github.com/pdrpinto/mazepath/internal/session"
	"github.com/pdrpinto/mazepath/internal/viewer"
)

// Game implements ebiten.Game over one maze session.
type Game struct {
	ctx     context.Context
	logger  *slog.Logger
	cfg     config.Config
	session *session.Session
	factory session.GridFactory
	marker  *session.Marker
	layout  viewer.Layout
	overlay bool
}

func (g *Game) reset() {
	g.marker = session.NewMarker(g.session.Result.Path, g.cfg.View.TicksPerCell)
	g.layout = viewer.FitLayout(g.session.Grid.Width(), g.session.Grid.Height(),
		g.cfg.View.WindowWidth, g.cfg.View.WindowHeight, g.cfg.View.CellSize)
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		// A new maze always comes with a fresh search; never keep the old path.
		if err := g.session.Regenerate(g.ctx, g.factory); err != nil {
			g.logger.Error("regenerate failed", "error", err)
			break
		}
		g.reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.overlay = !g.overlay
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.marker.Reset()
	}
	g.marker.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	scene := viewer.Build(g.session, g.marker, g.layout, g.overlay)

	screen.Fill(scene.Background)
	for _, r := range scene.Cells {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	for _, l := range scene.Walls {
		vector.StrokeLine(screen, l.X0, l.Y0, l.X1, l.Y1, g.layout.Stroke, l.Color, true)
	}
	if m := scene.Marker; m != nil {
		vector.DrawFilledRect(screen, m.X, m.Y, m.W, m.H, m.Color, true)
	}
	// Debug font is always white; the overlay is only legible on dark cells.
	for _, label := range scene.Labels {
		ebitenutil.DebugPrintAt(screen, label.Text, label.X, label.Y)
	}

	r := g.session.Result
	status := fmt.Sprintf("maze #%d  R: new maze  O: scores  Space: replay  Esc: quit", g.session.Generation())
	if r.Found {
		status += fmt.Sprintf("\npath %d steps, %d expanded", r.TotalCost, r.ExpandedNodes)
	} else {
		status += fmt.Sprintf("\nno path, %d expanded", r.ExpandedNodes)
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.View.WindowWidth, g.cfg.View.WindowHeight
}

func main() {
	fs := pflag.NewFlagSet("mazeview", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ctx, logger, err := app.Logger(context.Background(), os.Stderr, cfg.Log)
	if err != nil {
		log.Fatal(err)
	}

	s, factory, err := app.NewSession(ctx, cfg)
	if err != nil {
		logger.Error("failed to build maze", "error", err)
		os.Exit(1)
	}

	game := &Game{
		ctx:     ctx,
		logger:  logger,
		cfg:     cfg,
		session: s,
		factory: factory,
		overlay: cfg.View.Overlay,
	}
	game.reset()

	ebiten.SetWindowSize(cfg.View.WindowWidth, cfg.View.WindowHeight)
	ebiten.SetWindowTitle(cfg.View.WindowTitle)

	logger.Info("starting viewer", "width", cfg.View.WindowWidth, "height", cfg.View.WindowHeight)
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		logger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
