package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/balkashynov/safehours/internal/config"
	"github.com/balkashynov/safehours/internal/db"
	"github.com/balkashynov/safehours/internal/logging"
	"github.com/balkashynov/safehours/internal/parser"
	"github.com/balkashynov/safehours/internal/store"
)

// App bundles everything a command needs
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Store      *store.Store
	TargetDate string

	slot     db.Slot
	closeLog func() error
}

// openApp loads config, opens the slot and loads the activity log.
// quietConsole drops console logging, for full-screen UIs.
func openApp(cmd *cobra.Command, quietConsole bool) (*App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	targetFlag, _ := cmd.Flags().GetString("date")
	targetDate, err := parser.ParseDate(targetFlag, nowFunc())
	if err != nil {
		return nil, fmt.Errorf("invalid --date: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	if quietConsole && cfg.Logging.IsConsole() {
		logger = logging.Discard()
	}

	slot, err := db.Open(cfg.Storage.Backend, cfg.Storage.Path, logger)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}

	s := store.New(slot, cfg.Storage.Key, logger)
	if err := s.Load(); err != nil {
		if !errors.Is(err, store.ErrMalformedLog) {
			_ = slot.Close()
			_ = closeLog()
			return nil, err
		}
		// A corrupt log degrades to an empty one
		logger.Warn("ignoring stored activity log", "error", err)
	}

	return &App{
		Config:     cfg,
		Logger:     logger,
		Store:      s,
		TargetDate: targetDate,
		slot:       slot,
		closeLog:   closeLog,
	}, nil
}

// Close releases the slot and log file
func (a *App) Close() error {
	err := a.slot.Close()
	if cerr := a.closeLog(); err == nil {
		err = cerr
	}
	return err
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// withApp wraps a command function to open the app first
func withApp(fn func(*App, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(app, cmd, args)
	}
}
