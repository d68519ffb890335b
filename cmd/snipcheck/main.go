// Command snipcheck validates generated code snippets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia-labs/snipcheck/internal/adapters/driven/config/file"
	"github.com/custodia-labs/snipcheck/internal/adapters/driven/esbuild"
	"github.com/custodia-labs/snipcheck/internal/adapters/driven/libsass"
	"github.com/custodia-labs/snipcheck/internal/adapters/driven/sass"
	"github.com/custodia-labs/snipcheck/internal/adapters/driving/cli"
	"github.com/custodia-labs/snipcheck/internal/checkers"
	"github.com/custodia-labs/snipcheck/internal/checkers/stylesheet"
	"github.com/custodia-labs/snipcheck/internal/core/services"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires the config store, compilers and checkers.
func buildServices(configDir string) (*cli.Services, func(), error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, err
	}

	dartSass := sass.New(settings.Sass.Binary, time.Duration(settings.Sass.TimeoutSeconds)*time.Second)
	if !dartSass.Available() {
		logger.Debug("dart sass %q not found, stylesheets are checked in process", settings.Sass.Binary)
	}

	css := stylesheet.NewFallback(dartSass, esbuild.NewCSSCompiler())
	scss := stylesheet.NewFallback(dartSass, libsass.New())

	registry := services.NewCheckerRegistry(checkers.Builtin(settings, css, scss)...)

	cleanup := func() {
		if err := dartSass.Close(); err != nil {
			logger.Warn("closing dart sass: %v", err)
		}
	}

	return &cli.Services{
		Syntax:   services.NewSyntaxService(registry, settings.Check.Concurrency),
		Settings: settingsService,
	}, cleanup, nil
}
