package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/rand"

	"snake-arena/autopilot"
	"snake-arena/config"
	"snake-arena/game"
	"snake-arena/game/types"
	"snake-arena/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.InitEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	variant, err := game.VariantByName(cfg.Variant, cfg.Growth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	// The terminal backend owns stdout/stderr while it runs, so log lines are
	// held back and written once the screen is released.
	var logOut io.Writer = os.Stderr
	var held bytes.Buffer
	if cfg.Backend == config.BackendTerminal {
		logOut = &held
	}
	logger := log.New(logOut, "[snake] ", log.LstdFlags)
	defer func() {
		if held.Len() > 0 {
			os.Stderr.Write(held.Bytes())
		}
	}()

	backend, err := openBackend(cfg.Backend, variant.Shape)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backend: %v\n", err)
		return 1
	}
	defer backend.Close()

	rng := rand.New(rand.NewSource(cfg.Seed))
	g, err := game.NewGame(variant, backend, rng)
	if err != nil {
		logger.Printf("start: %v", err)
		return 1
	}
	logger.SetPrefix(fmt.Sprintf("[snake %s] ", g.UUID))
	logger.Printf("start: variant=%s backend=%s seed=%d tick=%s autopilot=%t",
		variant.Name, cfg.Backend, cfg.Seed, cfg.TickDelay, cfg.Autopilot)

	var input game.Backend = backend
	if cfg.Autopilot {
		input = autopilot.NewSource(backend, g)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game.NewLoop(g, input, cfg.TickDelay, logger).Run(ctx)
	return 0
}

func openBackend(name string, shape game.Shape) (game.Backend, error) {
	if name == config.BackendTerminal {
		t, err := ui.NewTerminalBackend(shape, types.Step)
		if err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		return t, nil
	}
	w, err := ui.NewWindowBackend(types.ArenaWidth, types.ArenaHeight, shape)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	return w, nil
}
