// Package game runs the tile sandbox: a shimmering field of background dots,
// a player glyph moved with the arrow keys and a frame-time readout, all drawn
// through a two-layer renderer once per animation frame.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tile-sandbox/internal/color"
	"tile-sandbox/internal/config"
	"tile-sandbox/internal/geom"
	"tile-sandbox/internal/layer"
	"tile-sandbox/internal/render"
	"tile-sandbox/internal/sched"

	"github.com/gdamore/tcell/v2"
)

// Layer names, back to front.
const (
	LayerBackground = "background"
	LayerActor      = "actor"
)

// GameState holds everything the frame loop touches. All methods must be
// called from a single goroutine (the scheduler's).
type GameState struct {
	cfg        config.Config
	palette    config.Palette
	logger     *slog.Logger
	surface    render.Surface
	renderer   *render.Renderer
	background *layer.Layer
	actor      *layer.Layer

	player          *layer.Tile
	backgroundTiles []*layer.Tile
	textOrigin      geom.Vector

	clock   func() time.Time
	start   time.Time // first frame, origin of the shimmer phase
	tickAt  time.Time // scheduler time of the frame being drawn
	last    time.Time // end of the previous frame
	overlay string    // frame-time text drawn on the next frame
	frames  FrameTimes
}

// Option customises a GameState.
type Option func(*GameState)

// WithClock replaces time.Now for frame-time measurement.
func WithClock(now func() time.Time) Option {
	return func(g *GameState) { g.clock = now }
}

// New builds the layers, renderer, player and background for cfg.
// surface receives every composited frame and may be nil.
func New(cfg config.Config, surface render.Surface, logger *slog.Logger, opts ...Option) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	size := geom.Vector{X: cfg.Width, Y: cfg.Height}
	background, err := layer.New(size)
	if err != nil {
		return nil, fmt.Errorf("background layer: %w", err)
	}
	actor, err := layer.New(size)
	if err != nil {
		return nil, fmt.Errorf("actor layer: %w", err)
	}
	renderer, err := render.NewRenderer(surface, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	renderer.SetSize(cfg.Scale)
	renderer.SetClearColor(palette.Clear)
	renderer.AddLayer(LayerBackground, background)
	renderer.AddLayer(LayerActor, actor)

	g := &GameState{
		cfg:        cfg,
		palette:    palette,
		logger:     logger,
		surface:    surface,
		renderer:   renderer,
		background: background,
		actor:      actor,
		textOrigin: geom.Vector{X: cfg.TextX, Y: cfg.TextY},
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.player = layer.NewTile(layer.TileOptions{
		Char:       cfg.PlayerGlyph,
		Color:      &palette.Player,
		Background: &color.Transparent,
		Pos:        geom.Zero(),
	})
	g.backgroundTiles = make([]*layer.Tile, 0, cfg.Width*cfg.Height)
	for i := 0; i < cfg.Width*cfg.Height; i++ {
		g.backgroundTiles = append(g.backgroundTiles, layer.NewTile(layer.TileOptions{
			Char:  ".",
			Color: &palette.Glyph,
			Pos:   geom.Vector{X: i % cfg.Width, Y: i / cfg.Width},
		}))
	}
	renderer.OnBeforeDraw(g.shimmer)
	g.last = g.clock()
	return g, nil
}

// Player returns the player tile. Its position is mutated by HandleKey.
func (g *GameState) Player() *layer.Tile { return g.player }

// Renderer returns the renderer driving the layers.
func (g *GameState) Renderer() *render.Renderer { return g.renderer }

// Overlay returns the frame-time text that the next frame will draw.
func (g *GameState) Overlay() string { return g.overlay }

// Tick draws one frame. now is the time the frame was scheduled for and only
// drives the shimmer phase; frame time is measured with the clock.
//
// The previous frame's time is drawn after the background tiles so the dots
// do not cover it.
func (g *GameState) Tick(now time.Time) {
	if g.start.IsZero() {
		g.start = now
	}
	g.tickAt = now

	for _, t := range g.backgroundTiles {
		g.background.Draw(t)
	}
	g.drawText(g.overlay, g.background, g.textOrigin)
	g.actor.Draw(g.player)
	g.renderer.Commit()

	frameTime := g.clock().Sub(g.last)
	g.frames.Add(frameTime)
	g.overlay = overlayText(frameTime)
	g.last = g.clock()
}

// drawText queues one fresh tile per character of text on l, left to right
// from start.
func (g *GameState) drawText(text string, l *layer.Layer, start geom.Vector) {
	i := 0
	for _, ch := range text {
		l.Draw(layer.NewTile(layer.TileOptions{
			Char:  string(ch),
			Color: &g.palette.Glyph,
			Pos:   geom.Add(start, geom.Vector{X: i, Y: 0}),
		}))
		i++
	}
}

// Report drains the frame-time samples and logs their average. With no
// samples it reports zero.
func (g *GameState) Report() (time.Duration, int) {
	avg, n := g.frames.Drain()
	g.logger.Info("average frame time", "avg", avg, "samples", n)
	if s, ok := g.surface.(interface{ SetStatus(string) }); ok {
		s.SetStatus(fmt.Sprintf("avg frame %v over %d frames", avg.Round(10*time.Microsecond), n))
	}
	return avg, n
}

// Run drives the sandbox on screen until the player quits, the screen closes
// or ctx is done. Frames, reports and input all run on the calling goroutine.
func (g *GameState) Run(ctx context.Context, screen tcell.Screen) error {
	s := sched.New(time.Duration(g.cfg.FrameInterval))

	var frame sched.Func
	frame = func(now time.Time) {
		g.Tick(now)
		s.RequestFrame(frame)
	}
	s.RequestFrame(frame)
	s.Every(time.Duration(g.cfg.ReportInterval), func(time.Time) { g.Report() })

	// PollEvent blocks, so it gets its own goroutine; handling happens on the
	// scheduler.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				s.Stop()
				return
			}
			s.Post(func() { g.handleEvent(ev, screen, s) })
		}
	}()

	g.logger.Info("sandbox started", "width", g.cfg.Width, "height", g.cfg.Height,
		"frame_interval", time.Duration(g.cfg.FrameInterval))
	err := s.Run(ctx)
	g.logger.Info("sandbox stopped", "error", err)
	return err
}

func (g *GameState) handleEvent(ev tcell.Event, screen tcell.Screen, s *sched.Scheduler) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		if g.HandleKey(ev) == ActionQuit {
			s.Stop()
		}
	}
}
