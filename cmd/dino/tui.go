package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/dino/internal/client/character"
	"github.com/garrettladley/dino/internal/config"
	"github.com/garrettladley/dino/internal/paths"
	"github.com/garrettladley/dino/internal/session"
	"github.com/garrettladley/dino/internal/tui"
	"github.com/garrettladley/dino/internal/xslog"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	logPath := cfg.LogFile
	if logPath == "" {
		if _, err := paths.EnsureDir(); err != nil {
			return err
		}
		if logPath, err = paths.Log(); err != nil {
			return err
		}
	}

	logger, closer, err := xslog.NewFileLogger(logPath, xslog.FromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	logger = logger.With(xslog.SessionID(session.NewID()))
	slog.SetDefault(logger)

	ctx := xslog.WithLogger(cmd.Context(), logger)

	patientID := resolvePatientID(ctx, cfg)
	logger.InfoContext(ctx, "starting tui",
		xslog.Version(),
		xslog.URL(cfg.ServiceURL),
		xslog.PatientID(patientID),
	)

	client := character.New(cfg.ServiceURL,
		character.WithLogger(logger),
		character.WithTimeout(cfg.RequestTimeout),
	)

	model := tui.New(tui.Deps{
		Ctx:            ctx,
		Logger:         logger,
		Fetcher:        client.Status,
		PatientID:      patientID,
		RequestTimeout: cfg.RequestTimeout,
	})

	p := tea.NewProgram(&model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
