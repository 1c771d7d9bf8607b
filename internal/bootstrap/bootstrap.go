package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	accountinadapter "worksync/internal/modules/account/adapter/in"
	accountoutadapter "worksync/internal/modules/account/adapter/out"
	accountservice "worksync/internal/modules/account/service"
	accountusecase "worksync/internal/modules/account/usecase"
	taskinadapter "worksync/internal/modules/task/adapter/in"
	taskoutadapter "worksync/internal/modules/task/adapter/out"
	taskservice "worksync/internal/modules/task/service"
	taskusecase "worksync/internal/modules/task/usecase"
	"worksync/internal/platform/clock"
	"worksync/internal/platform/config"
	"worksync/internal/platform/id"
	"worksync/internal/platform/kv"
	"worksync/internal/platform/latency"
	uiapp "worksync/internal/ui/app"
)

type App struct {
	AccountCLI accountinadapter.CLIHandler
	TaskCLI    taskinadapter.CLIHandler

	store kv.Store
}

func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	store, err := OpenStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Named("kv").Debug("storage opened", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)

	clk := clock.SystemClock{}
	ids := id.UUID{}
	sim := latency.New(cfg.LatencyScale)

	accountUC := accountusecase.NewInteractor(
		accountservice.NewAccountService(
			ids,
			accountoutadapter.NewKVAccountStore(store),
			accountoutadapter.NewKVSessionStore(store),
		),
		sim,
		logger.Named("account"),
	)
	taskUC := taskusecase.NewInteractor(
		taskservice.NewTaskService(
			clk,
			ids,
			taskoutadapter.NewKVTaskStore(store),
			taskoutadapter.NewMarkdownExporter(),
		),
		sim,
		logger.Named("task"),
	)

	return &App{
		AccountCLI: accountinadapter.NewCLIHandler(accountUC),
		TaskCLI:    taskinadapter.NewCLIHandler(taskUC),
		store:      store,
	}, nil
}

// OpenStore builds the key-value backend named by the storage config.
func OpenStore(cfg config.Storage) (kv.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := kv.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case config.DriverFile:
		return kv.NewFileStore(cfg.Path), nil
	case config.DriverMemory:
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}

// RunTUI opens the dashboard for the account in the current session.
func RunTUI(ctx context.Context, app *App) error {
	account, err := app.AccountCLI.Whoami(ctx)
	if err != nil {
		return err
	}
	model := uiapp.NewModel(account, app.TaskCLI)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
