// Command piiguard pseudonymizes and encrypts the user records of a small
// SQLite (or PostgreSQL) store.
//
// Usage:
//
//	piiguard [flags] [init|list|pseudonymize|encrypt|decrypt|selfcheck|demo]
//
// Without a command the demo pipeline runs. See package config for flags and
// environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/piiguard/internal/app"
	"github.com/dmitrijs2005/piiguard/internal/buildinfo"
	"github.com/dmitrijs2005/piiguard/internal/config"
	"github.com/dmitrijs2005/piiguard/internal/flagx"
	"github.com/dmitrijs2005/piiguard/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildinfo.PrintBuildData(os.Stderr)

	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "piiguard: %v\n", err)
		return 2
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "piiguard: %v\n", err)
		return 2
	}

	var command string
	if pos := flagx.Positional(args, config.ValueFlags); len(pos) > 0 {
		command = pos[0]
	}

	if err := app.CheckCommand(command); err != nil {
		logger.Error(ctx, "invalid usage", "error", err)
		return 2
	}

	a, err := app.New(ctx, cfg, logger, os.Stdout)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn(ctx, "close record store", "error", err)
		}
	}()

	if err := a.Run(ctx, command); err != nil {
		logger.Error(ctx, "command failed", "command", command, "error", err)
		return 1
	}
	return 0
}
