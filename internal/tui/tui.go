package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type TUI struct {
	vault     service.VaultService
	clipboard clipboard.Clipboard
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(vault service.VaultService, clip clipboard.Clipboard, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	if clip == nil {
		clip = clipboard.Nop{}
	}
	return &TUI{
		vault:     vault,
		clipboard: clip,
		buildInfo: buildInfo,
		logger:    logger.WithComponent("tui"),
	}
}

// Run shows the unlock screen for path (or the create screen when create is
// set) and blocks until the user quits. The session is closed on return.
func (t *TUI) Run(ctx context.Context, path string, create bool) error {
	defer t.vault.Close()

	model := newAppModel(ctx, t.vault, t.clipboard, t.buildInfo, path, create)
	t.logger.Debug().Str("path", path).Bool("create", create).Msg("starting tui")

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Error().Err(err).Msg("tui stopped")
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser && result.currentScreen == screenUnlock {
		return ErrUserQuit
	}
	return nil
}
