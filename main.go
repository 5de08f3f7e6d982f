// tile-sandbox composites a shimmering background and a movable player glyph
// into the terminal once per frame. Build:
//
//	go build -o tile-sandbox .
//
// Usage:
//
//	./tile-sandbox [--config sandbox.toml] [--log path|-]
//
// Arrow keys (or hjkl) move the player; Esc or q quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"tile-sandbox/internal/config"
	"tile-sandbox/internal/game"
	"tile-sandbox/internal/render"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfgPath := flag.String("config", "sandbox.toml", "Path to the TOML config (defaults are used if absent)")
	logPath := flag.String("log", "", `Log file ("-" for stderr, default under $XDG_STATE_HOME)`)
	flag.Parse()

	if err := run(*cfgPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, logPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLog(logPath)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g, err := game.New(cfg, render.NewTerminalSurface(screen), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := g.Run(ctx, screen); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// openLog opens the log destination. The terminal is owned by the screen, so
// logs go to a file unless "-" asks for stderr.
func openLog(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stderr, func() {}, nil
	}
	if path == "" {
		p, err := config.LogPath()
		if err != nil {
			return nil, nil, fmt.Errorf("log path: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return f, func() { f.Close() }, nil
}
