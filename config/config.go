package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

type Config struct {
	Variant   string
	Backend   string
	Seed      uint64
	TickDelay time.Duration
	Growth    int // Only used by the squares variant
	Autopilot bool
}

func Default() Config {
	return Config{
		Variant:   "classic",
		Backend:   BackendWindow,
		Seed:      uint64(time.Now().UnixNano()),
		TickDelay: 100 * time.Millisecond,
		Growth:    5,
	}
}

// InitEnv loads variables from a .env file into the environment. A missing
// file is fine; other errors are returned.
func InitEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load builds the configuration from the environment, then from args.
// Flags win over environment variables. Usage and flag errors are printed on
// stderr; -h returns flag.ErrHelp.
func Load(args []string) (Config, error) {
	return load(args, os.Stderr)
}

func load(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	fsFlags := flag.NewFlagSet("snake", flag.ContinueOnError)
	fsFlags.SetOutput(output)
	variant := fsFlags.String("variant", cfg.Variant, "Game variant: classic or squares")
	backend := fsFlags.String("backend", cfg.Backend, "Backend: window or terminal")
	seed := fsFlags.Uint64("seed", cfg.Seed, "Random seed for apple placement")
	tick := fsFlags.Int("tick", int(cfg.TickDelay/time.Millisecond), "Delay between ticks in milliseconds")
	growth := fsFlags.Int("growth", cfg.Growth, "Segments gained per apple (squares variant)")
	autopilot := fsFlags.Bool("autopilot", cfg.Autopilot, "Let the computer steer")
	if err := fsFlags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	cfg.Variant = *variant
	cfg.Backend = *backend
	cfg.Seed = *seed
	cfg.TickDelay = time.Duration(*tick) * time.Millisecond
	cfg.Growth = *growth
	cfg.Autopilot = *autopilot

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SNAKE_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := os.Getenv("SNAKE_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("SNAKE_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SNAKE_TICK_MS: %w", err)
		}
		c.TickDelay = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("SNAKE_GROWTH"); v != "" {
		growth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SNAKE_GROWTH: %w", err)
		}
		c.Growth = growth
	}
	if v := os.Getenv("SNAKE_AUTOPILOT"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SNAKE_AUTOPILOT: %w", err)
		}
		c.Autopilot = on
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Variant {
	case "classic", "squares":
	default:
		return fmt.Errorf("unknown variant %q", c.Variant)
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.TickDelay <= 0 {
		return fmt.Errorf("tick delay must be positive, got %s", c.TickDelay)
	}
	if c.Growth <= 0 {
		return fmt.Errorf("growth must be positive, got %d", c.Growth)
	}
	return nil
}
