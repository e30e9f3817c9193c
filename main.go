package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"

	"github.com/soocke/camfps-go/app"
	"github.com/soocke/camfps-go/app/headless"
	"github.com/soocke/camfps-go/config"
)

func main() {
	fs := pflag.NewFlagSet("camfps", pflag.ExitOnError)
	config.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, path, err := config.Resolve(fs, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	// Set up logger
	logger := NewLogger(cfg.LogLevel)
	logger.Info("config loaded", "path", path, "mode", cfg.Mode, "source", cfg.Source, "headless", cfg.Headless)

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.HeadlessSeconds)*time.Second)
		defer cancel()
		grabber := headless.NewGrabber(cfg)
		if err := headless.Run(ctx, cfg, logger, grabber); err != nil {
			logger.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	application := app.NewApp("Frame Rate Counter", cfg, logger)
	application.Start()
}

