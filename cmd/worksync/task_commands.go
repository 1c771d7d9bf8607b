package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worksync/internal/bootstrap"
	"worksync/internal/modules/task/dto"
	apperrors "worksync/internal/platform/errors"
)

func newTaskCmd(flags *globalFlags) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Create, edit and log progress on tasks"}
	task.AddCommand(
		newTaskCreateCmd(flags),
		newTaskEditCmd(flags),
		newTaskDeleteCmd(flags, StdioPrompter{}),
		newTaskListCmd(flags),
		newTaskShowCmd(flags),
		newTaskUpdateCmd(flags),
	)
	return task
}

func newTaskCreateCmd(flags *globalFlags) *cobra.Command {
	var title, description, start string
	var duration int
	cmd := &cobra.Command{
		Use:   "create --title <title>",
		Short: "Create a pending task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startTime, err := parseStart(start)
			if err != nil {
				return err
			}
			return withAccount(cmd, flags, func(ctx context.Context, app *bootstrap.App, accountID string) error {
				out, err := app.TaskCLI.Create(ctx, accountID, title, description, startTime, duration)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s %q\n", out.ID, out.Title)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&description, "description", "", "task description")
	cmd.Flags().StringVar(&start, "start", "", "planned start, RFC3339 or 2006-01-02T15:04 local (default now)")
	cmd.Flags().IntVar(&duration, "duration", 0, "expected duration in minutes (default 60)")
	return cmd
}

func newTaskEditCmd(flags *globalFlags) *cobra.Command {
	var title, description, start string
	var duration int
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, description, start or expected duration of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := dto.EditInput{}
			changed := cmd.Flags().Changed
			if changed("title") {
				input.Title = &title
			}
			if changed("description") {
				input.Description = &description
			}
			if changed("start") {
				startTime, err := parseStart(start)
				if err != nil {
					return err
				}
				if startTime.IsZero() {
					return fmt.Errorf("%w: --start must not be empty", apperrors.ErrInvalidInput)
				}
				input.StartTime = &startTime
			}
			if changed("duration") {
				input.ExpectedDuration = &duration
			}
			return withAccount(cmd, flags, func(ctx context.Context, app *bootstrap.App, accountID string) error {
				taskID, err := resolveTaskID(ctx, app, accountID, args[0])
				if err != nil {
					return err
				}
				input.TaskID = taskID
				out, err := app.TaskCLI.Edit(ctx, input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "edited %s %q\n", out.ID, out.Title)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&start, "start", "", "new planned start")
	cmd.Flags().IntVar(&duration, "duration", 0, "new expected duration in minutes")
	return cmd
}

func newTaskDeleteCmd(flags *globalFlags, prompter Prompter) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task and its progress history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAccount(cmd, flags, func(ctx context.Context, app *bootstrap.App, accountID string) error {
				taskID, err := resolveTaskID(ctx, app, accountID, args[0])
				if errors.Is(err, apperrors.ErrTaskNotFound) {
					// Nothing of ours to remove; deleting stays idempotent.
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
					return nil
				}
				if err != nil {
					return err
				}
				if !yes {
					ok, err := prompter.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete task %s and its history?", taskID))
					if err != nil {
						return fmt.Errorf("prompt: %w", err)
					}
					if !ok {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
						return nil
					}
				}
				if err := app.TaskCLI.Delete(ctx, taskID); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", taskID)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newTaskListCmd(flags *globalFlags) *cobra.Command {
	var status string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAccount(cmd, flags, func(ctx context.Context, app *bootstrap.App, accountID string) error {
				tasks, err := app.TaskCLI.List(ctx, accountID, status)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), tasks)
				}
				if len(tasks) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
					return nil
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatTaskTable(tasks))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "filter: all|pending|active|completed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newTaskShowCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task and its history, newest entry first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAccount(cmd, flags, func(ctx context.Context, app *bootstrap.App, accountID string) error {
				taskID, err := resolveTaskID(ctx, app, accountID, args[0])
				if err != nil {
					return err
				}
				task, err := app.TaskCLI.Show(ctx, taskID)
				if err != nil {
					return err
				}
				history, err := app.TaskCLI.History(ctx, taskID)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), task)
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), formatTaskDetail(task, history))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newTaskUpdateCmd(flags *globalFlags) *cobra.Command {
	var percent, minutes int
	var note string
	cmd := &cobra.Command{
		Use:   "update <id> --percent <0-100> --minutes <n>",
		Short: "Log progress and time spent on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAccount(cmd, flags, func(ctx context.Context, app *bootstrap.App, accountID string) error {
				taskID, err := resolveTaskID(ctx, app, accountID, args[0])
				if err != nil {
					return err
				}
				out, err := app.TaskCLI.Update(ctx, taskID, percent, minutes, note)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d%% %s, %d min spent\n", out.ID, out.CurrentProgress, out.Status, out.TotalTimeSpent)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&percent, "percent", 0, "progress percentage after this work")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "minutes spent in this session")
	cmd.Flags().StringVar(&note, "note", "", "what was done")
	_ = cmd.MarkFlagRequired("percent")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

// resolveTaskID expands a unique id prefix among the account's tasks. Tasks
// owned by other accounts never match, so they read as not found.
func resolveTaskID(ctx context.Context, app *bootstrap.App, accountID, arg string) (string, error) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if arg == "" {
		return "", fmt.Errorf("%w: task id is required", apperrors.ErrInvalidInput)
	}
	tasks, err := app.TaskCLI.List(ctx, accountID, "all")
	if err != nil {
		return "", err
	}
	var matches []string
	for _, t := range tasks {
		if t.ID == arg {
			return arg, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", apperrors.ErrTaskNotFound, arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: id prefix %q matches %d tasks", apperrors.ErrInvalidInput, arg, len(matches))
	}
}

// parseStart accepts RFC3339 or a minute-precision local time. Empty means unset.
func parseStart(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse start time %q", apperrors.ErrInvalidInput, raw)
}
