//go:build !release

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/dino/internal/config"
	"github.com/garrettladley/dino/internal/fakeserver"
	"github.com/garrettladley/dino/internal/xslog"
)

const (
	flagAddr    = "addr"
	flagPatient = "patient"
	flagBump    = "bump"
	flagFail    = "fail-every"
)

func fakeServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fake-server",
		Short: "Serve a fake character-status service for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			addr, _ := cmd.Flags().GetString(flagAddr)
			if addr == "" {
				addr = cfg.FakeAddr
			}
			patientID, _ := cmd.Flags().GetString(flagPatient)
			bump, _ := cmd.Flags().GetDuration(flagBump)
			failEvery, _ := cmd.Flags().GetInt(flagFail)

			logger := xslog.NewLoggerFromEnv(cmd.OutOrStdout())
			slog.SetDefault(logger)
			logger.InfoContext(cmd.Context(), "seeding fake store", xslog.PatientID(patientID))

			store := fakeserver.NewSeededStore(patientID)
			handler := fakeserver.Routes(store, logger, fakeserver.WithFailEvery(failEvery))
			return serveFake(cmd.Context(), logger, addr, handler, store, bump)
		},
	}

	cmd.Flags().String(flagAddr, "", "listen address (default $DINO_FAKE_ADDR)")
	cmd.Flags().String(flagPatient, "abc123", "patient id to seed")
	cmd.Flags().Duration(flagBump, 0, "advance every attribute on this interval (0 disables)")
	cmd.Flags().Int(flagFail, 0, "answer every n-th status request with 503 (0 disables)")
	return cmd
}

// serveFake runs until ctx is cancelled, then shuts down gracefully.
func serveFake(ctx context.Context, logger *slog.Logger, addr string, handler http.Handler, store *fakeserver.Store, bump time.Duration) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if bump > 0 {
		go func() {
			ticker := time.NewTicker(bump)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					store.Bump()
				}
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "starting fake character service",
			xslog.Version(),
			xslog.Addr(addr),
			slog.Duration(flagBump, bump))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}
