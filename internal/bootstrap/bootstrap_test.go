package bootstrap_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"worksync/internal/bootstrap"
	"worksync/internal/platform/config"
	apperrors "worksync/internal/platform/errors"
)

func TestAppRoundTripsAcrossReopen(t *testing.T) {
	t.Parallel()
	drivers := map[string]config.Storage{
		config.DriverSQLite: {Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "worksync.db")},
		config.DriverFile:   {Driver: config.DriverFile, Path: filepath.Join(t.TempDir(), "collections")},
	}
	for name, storage := range drivers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			cfg := config.Config{Home: t.TempDir(), Storage: storage, LatencyScale: 0, LogLevel: "info"}

			app, err := bootstrap.New(cfg, nil)
			if err != nil {
				t.Fatalf("new app: %v", err)
			}
			account, err := app.AccountCLI.Register(ctx, "Ada", "ada@example.com", "secret")
			if err != nil {
				t.Fatalf("register: %v", err)
			}
			task, err := app.TaskCLI.Create(ctx, account.ID, "Write report", "", time.Time{}, 0)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if _, err := app.TaskCLI.Update(ctx, task.ID, 40, 20, "started"); err != nil {
				t.Fatalf("update: %v", err)
			}
			if err := app.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			reopened, err := bootstrap.New(cfg, nil)
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer reopened.Close()
			who, err := reopened.AccountCLI.Whoami(ctx)
			if err != nil || who.ID != account.ID {
				t.Fatalf("session not restored: %+v %v", who, err)
			}
			stored, err := reopened.TaskCLI.Show(ctx, task.ID)
			if err != nil {
				t.Fatalf("show: %v", err)
			}
			if stored.Status != "in_progress" || stored.TotalTimeSpent != 20 || len(stored.Updates) != 1 {
				t.Fatalf("task not persisted: %+v", stored)
			}
		})
	}
}

func TestMemoryDriverStartsEmpty(t *testing.T) {
	t.Parallel()
	app, err := bootstrap.New(config.Config{Home: t.TempDir(), Storage: config.Storage{Driver: config.DriverMemory}}, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.Close()
	if _, err := app.AccountCLI.Whoami(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session, got %v", err)
	}
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	t.Parallel()
	if _, err := bootstrap.OpenStore(config.Storage{Driver: "redis"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
