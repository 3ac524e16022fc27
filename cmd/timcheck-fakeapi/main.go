package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bobmcallan/timcheck/internal/app"
	"github.com/bobmcallan/timcheck/internal/common"
	"github.com/bobmcallan/timcheck/internal/fakeapi"
)

func main() {
	config, err := common.LoadConfig(app.ResolveConfigPath(""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := common.NewLogger(config.Logging.Level)

	fake := fakeapi.NewServer(
		fakeapi.WithSecret(config.FakeAPI.JWTSecret),
		fakeapi.WithTokenExpiry(config.FakeAPI.GetTokenExpiry()),
		fakeapi.WithLogger(logger),
	)

	srv := &http.Server{
		Addr:         config.FakeAPI.Addr,
		Handler:      fake.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Starting fake backend")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Fake backend failed")
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://%s", srv.Addr)).
		Msg("Fake backend ready, point TIMCHECK_BASE_URL at it")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Fake backend shutdown failed")
	}
	logger.Info().Int("users", fake.Users()).Msg("Fake backend stopped")
}
