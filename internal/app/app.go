package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/stverner/vergrid/internal/config"
	"github.com/stverner/vergrid/internal/ctxlog"
)

// App encapsulates the generator's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	model  *config.Model
}

// NewApp constructs the application: it builds an isolated logger writing
// to logW and loads all matrix definitions through the given loader.
// Failure to load configuration is a fatal startup error and panics.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("logger configured")

	model, err := loader.Load(ctx, cfg.GridPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("configuration loaded", "matrices", len(model.Specs))

	return &App{outW: outW, logger: logger, cfg: cfg, model: model}
}

// Model returns the loaded configuration model. Primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
