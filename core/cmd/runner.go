// Package cmd wires configuration loading, bootstrap, and the bot runtime
// into a single entry point used by the binary.
package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alisha/dialect/core/bootstrap"
	coreconfig "github.com/alisha/dialect/core/config"
	"github.com/alisha/dialect/core/logger"
	coretelegram "github.com/alisha/dialect/core/telegram"
)

// Options describe where configuration comes from.
type Options struct {
	ConfigEnvVar      string
	DefaultConfigPath string
}

// Run loads configuration, bootstraps the service, and runs the bot until
// an interrupt or termination signal arrives.
func Run(opts Options) error {
	env := opts.ConfigEnvVar
	if env == "" {
		env = "CONFIG_PATH"
	}
	cfgPath := os.Getenv(env)
	if cfgPath == "" {
		cfgPath = opts.DefaultConfigPath
	}
	if cfgPath == "" {
		return fmt.Errorf("cmd: config path not provided via %s or DefaultConfigPath", env)
	}

	log.Printf("loading config: %s", cfgPath)
	cfg, err := coreconfig.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("cmd: failed to load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startedAt := time.Now()
	infra, err := bootstrap.Run(ctx, cfg)
	if err != nil {
		return fmt.Errorf("cmd: bootstrap failed: %w", err)
	}
	defer func() {
		if err := infra.Close(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	handler := coretelegram.NewDialogHandler(infra.Catalog, infra.Store)

	logger.L.With("component", "app").Info("app ready",
		slog.String("event", "ready"),
		slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
	)

	err = coretelegram.Run(ctx, coretelegram.RunOptions{
		Config:  cfg,
		Handler: handler,
	})

	logger.L.With("component", "app").Info("shutting down...",
		slog.String("event", "shutdown"),
	)

	return err
}
