package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

// App runs the interactive terminal client against a single database file.
type App struct {
	tui    *tui.TUI
	path   string
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, path string, logger *logger.Logger) (*App, error) {
	if path == "" {
		return nil, app.ErrNoDatabaseConfigured
	}
	return &App{tui: ui, path: path, logger: logger.WithComponent("client")}, nil
}

// Run opens the database, or offers to create it when the file does not
// exist yet. Quitting from the unlock screen is not an error.
func (a *App) Run(ctx context.Context) error {
	create := false
	if _, err := os.Stat(a.path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat database: %w", err)
		}
		create = true
	}

	a.logger.Info().Str("path", a.path).Bool("create", create).Msg("starting interactive client")
	err := a.tui.Run(ctx, a.path, create)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
