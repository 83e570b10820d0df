package main

import (
	"errors"
	"fmt"
	"io"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/dino/internal/client/character"
	"github.com/garrettladley/dino/internal/config"
	"github.com/garrettladley/dino/internal/status"
	"github.com/garrettladley/dino/internal/xslog"
)

const flagJSON = "json"

var errNoPatient = errors.New("no patient id: set DINO_PATIENT_ID or run `dino patient set <id>`")

type statusOutput struct {
	PatientID string            `json:"patient_id"`
	Level     int               `json:"level"`
	Status    *character.Status `json:"status"`
	Ratios    statusRatios      `json:"ratios"`
}

type statusRatios struct {
	XP          float64 `json:"xp"`
	Energia     float64 `json:"energia"`
	Felicidade  float64 `json:"felicidade"`
	Alimentacao float64 `json:"alimentacao"`
	Forca       float64 `json:"forca"`
}

func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Fetch the character status once",
		Long:  "Fetches the character status for the configured patient and prints raw values with bar ratios.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			// stdout carries the result; logs go to stderr
			logger := xslog.NewLoggerFromEnv(cmd.ErrOrStderr())
			ctx := xslog.WithLogger(cmd.Context(), logger)

			patientID := resolvePatientID(ctx, cfg)
			if patientID == "" {
				return errNoPatient
			}

			client := character.New(cfg.ServiceURL,
				character.WithLogger(logger),
				character.WithTimeout(cfg.RequestTimeout),
			)

			s, err := client.Status.Get(ctx, patientID)
			if err != nil {
				logger.ErrorContext(ctx, "failed to fetch character status",
					xslog.PatientID(patientID),
					xslog.Error(err),
				)
				return err
			}

			out := newStatusOutput(patientID, s)
			asJSON, _ := cmd.Flags().GetBool(flagJSON)
			if asJSON {
				return writeStatusJSON(cmd.OutOrStdout(), out)
			}
			writeStatusText(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Bool(flagJSON, false, "print the status as JSON")
	return cmd
}

func newStatusOutput(patientID string, s *character.Status) statusOutput {
	r := status.RatiosOf(s)
	return statusOutput{
		PatientID: patientID,
		Level:     status.Level,
		Status:    s,
		Ratios: statusRatios{
			XP:          r.XP,
			Energia:     r.Energia,
			Felicidade:  r.Felicidade,
			Alimentacao: r.Alimentacao,
			Forca:       r.Forca,
		},
	}
}

func writeStatusJSON(w io.Writer, out statusOutput) error {
	enc := go_json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	return nil
}

func writeStatusText(w io.Writer, out statusOutput) {
	r := status.RatiosOf(out.Status)
	_, _ = fmt.Fprintf(w, "patient  %s\nlevel    %d\n", out.PatientID, out.Level)
	_, _ = fmt.Fprintf(w, "%-12s %6.1f / %-3d %5.2f\n", "XP", out.Status.XP, status.XPScale, r.XP)

	raw := []float64{out.Status.Energia, out.Status.Felicidade, out.Status.Alimentacao, out.Status.Forca}
	for i, topic := range r.Topics() {
		_, _ = fmt.Fprintf(w, "%-12s %6.1f / %-3d %5.2f\n", topic.Title, raw[i], status.AttributeScale, topic.Ratio)
	}
}
