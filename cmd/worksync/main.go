// Command worksync tracks tasks and the progress logged against them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"worksync/internal/bootstrap"
	"worksync/internal/platform/config"
	apperrors "worksync/internal/platform/errors"
	"worksync/internal/platform/logging"
)

const (
	exitOK      = 0
	exitUser    = 1
	exitStorage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitCode(err)
	}
	return exitOK
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	home       string
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "worksync",
		Short:         "Track tasks and the time spent on them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.home, "home", "", "data directory (default $WORKSYNC_HOME or ~/.local/share/worksync)")
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default <home>/worksync.yaml)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")

	root.AddCommand(newRegisterCmd(flags))
	root.AddCommand(newLoginCmd(flags))
	root.AddCommand(newLogoutCmd(flags))
	root.AddCommand(newWhoamiCmd(flags))
	root.AddCommand(newTaskCmd(flags))
	root.AddCommand(newStatsCmd(flags))
	root.AddCommand(newExportCmd(flags))
	root.AddCommand(newTUICmd(flags))
	return root
}

// storageError marks failures of the config or storage layer so they exit
// with a distinct code.
type storageError struct{ err error }

func (e storageError) Error() string { return e.err.Error() }
func (e storageError) Unwrap() error { return e.err }

func loadApp(cmd *cobra.Command, flags *globalFlags) (*bootstrap.App, error) {
	cfg, err := config.Load(config.Options{
		Home:       flags.home,
		ConfigFile: flags.configFile,
		LogLevel:   flags.logLevel,
	})
	if err != nil {
		return nil, storageError{err}
	}
	logger := logging.New(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON, Output: cmd.ErrOrStderr()})
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		return nil, storageError{err}
	}
	return app, nil
}

// withApp opens the application for the duration of fn.
func withApp(cmd *cobra.Command, flags *globalFlags, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(cmd.Context(), app)
}

// withAccount is withApp for commands that act on behalf of the signed-in account.
func withAccount(cmd *cobra.Command, flags *globalFlags, fn func(ctx context.Context, app *bootstrap.App, accountID string) error) error {
	return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
		account, err := app.AccountCLI.Whoami(ctx)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoSession) {
				return fmt.Errorf("%w: run worksync login first", err)
			}
			return err
		}
		return fn(ctx, app, account.ID)
	})
}

func exitCode(err error) int {
	var se storageError
	switch {
	case errors.Is(err, apperrors.ErrCorrupt), errors.Is(err, apperrors.ErrStorage), errors.As(err, &se):
		return exitStorage
	default:
		return exitUser
	}
}
