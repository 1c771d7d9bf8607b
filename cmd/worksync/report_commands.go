package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"worksync/internal/bootstrap"
	apperrors "worksync/internal/platform/errors"
)

func newStatsCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize your tasks by status, progress and time spent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAccount(cmd, flags, func(ctx context.Context, app *bootstrap.App, accountID string) error {
				stats, err := app.TaskCLI.Stats(ctx, accountID)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), stats)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatStats(stats))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newExportCmd(flags *globalFlags) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export --dir <dir>",
		Short: "Write one Markdown note per task into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				return fmt.Errorf("%w: --dir is required", apperrors.ErrInvalidInput)
			}
			return withAccount(cmd, flags, func(ctx context.Context, app *bootstrap.App, accountID string) error {
				out, err := app.TaskCLI.Export(ctx, accountID, dir)
				if err != nil {
					return err
				}
				for _, path := range out.Paths {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d notes\n", len(out.Paths))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "destination directory")
	return cmd
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the task dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(ctx, app)
			})
		},
	}
}
