// Command avup bootstraps the av CLI: it resolves the release artifact for
// the host platform, downloads and unpacks it, and places the executable
// on the user's search path. All configuration is environment-sourced;
// there are no flags beyond --version.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/auv-sh/avup/internal/config"
	"github.com/auv-sh/avup/internal/install"
	"github.com/auv-sh/avup/internal/logging"
)

const (
	exitOk = iota
	exitError
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("avup %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "avup: %v\n", err)
		os.Exit(exitError)
	}
	os.Exit(exitOk)
}

func run() error {
	// An interrupt mid-download cancels the context; the installer's
	// deferred cleanup then removes the working directory before we return.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(os.Stderr, logging.Level(cfg.Log.Level), logging.Format(cfg.Log.Format))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	installer, err := install.New(install.Options{
		Config:    cfg,
		Logger:    logger,
		Out:       os.Stdout,
		UserAgent: "avup/" + Version,
	})
	if err != nil {
		return err
	}

	if _, err := installer.Run(ctx); err != nil {
		return err
	}
	return nil
}
