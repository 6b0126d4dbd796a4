package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"eggs/internal/clock"
	"eggs/internal/config"
	"eggs/internal/crit"
	"eggs/internal/service"
)

const ConfigPath = "config/eggs.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := ConfigPath
	if p := os.Getenv("EGGS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	seed, err := crit.NewSeed()
	if err != nil {
		return err
	}
	clk := clock.RealClock{}
	rng := crit.NewLockedSource(crit.NewSource(seed))
	svc := service.NewGameService(cfg, clk, rng, clk.Now())

	slog.Info("eggclicker starting", "config", cfgPath, "log_level", cfg.LogLevel)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Eggs")
	if err := ebiten.RunGame(newGame(cfg, clk, svc)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
