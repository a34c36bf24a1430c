// Package main implements the entry point for the haengsi server, which
// serves a web form that turns a Korean word into an acrostic poem (행시)
// written by a hosted language model.
package main

import (
	"context"
	"fmt"
	"log"
)

// main is the entry point for the haengsi server.
// It loads configuration, sets up logging, wires dependencies and serves HTTP
// until SIGINT or SIGTERM.
func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("haengsi server failed: %v", err)
	}
}

// run initializes the application and blocks until the server has shut down.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logConfigSummary(logger, cfg)

	app, err := newApplication(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("Server stopped with error", "error", err)
		return err
	}

	return nil
}
