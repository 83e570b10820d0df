package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/dino/internal/patient"
)

func patientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Manage the patient id stored on this device",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the stored patient id",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, sqlDB, err := openPatientStore(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = sqlDB.Close() }()

				id, err := store.PatientID(cmd.Context())
				if errors.Is(err, patient.ErrNotFound) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no patient id stored")
					return nil
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <id>",
			Short: "Store the patient id the home screen binds to",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, sqlDB, err := openPatientStore(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = sqlDB.Close() }()

				if err := store.SetPatientID(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "patient id set to %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget the stored patient id",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, sqlDB, err := openPatientStore(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = sqlDB.Close() }()

				return store.Clear(cmd.Context())
			},
		},
	)

	return cmd
}
