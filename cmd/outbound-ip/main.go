package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/hnrobert/outbound-ip/internal/config"
	"github.com/hnrobert/outbound-ip/internal/ipdetect"
	"github.com/hnrobert/outbound-ip/internal/runner"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, cfgErr := config.FromEnv()
	log.SetLevel(cfg.LogLevel)
	for _, w := range cfg.Warnings {
		log.Warn(w)
	}
	if cfgErr != nil {
		log.WithError(cfgErr).Warn("config error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prober := ipdetect.NewProber(ipdetect.Options{
		Target:   cfg.Target,
		Method:   cfg.Method,
		Iface:    cfg.Iface,
		WiFiSSID: cfg.WiFiSSID,
		Timeout:  cfg.Timeout,
		Logger:   log,
	})

	r := runner.New(runner.Options{
		Prober:     prober,
		Out:        os.Stdout,
		Logger:     log,
		StartDelay: cfg.StartDelay,
		ConfigErr:  cfgErr,
	})

	if err := r.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.WithError(err).Error("fatal")
		os.Exit(1)
	}
}
