package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-contact-keeper/internal/detail"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: log}, nil
}

// LoginFlow runs the menu/login/register screens and blocks until the user
// authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) (userID int64, err error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return 0, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return 0, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return 0, ErrUserQuit
	}

	return result.resultID, nil
}

// MainLoop runs the contact list and detail screens. It owns the detail
// coordinator for the session: the coordinator consumes the contact
// engine's snapshot stream and publishes UI states the loop renders.
func (t *TUI) MainLoop(ctx context.Context, userID int64) (logout bool, err error) {
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	coordinator := detail.NewCoordinator(loopCtx, t.services.ContactService, t.logger)
	go coordinator.Run(loopCtx)

	model := newMainLoopModel(loopCtx, t.services, coordinator, userID)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.fatalErr != nil {
		return false, result.fatalErr
	}
	return result.logout, nil
}
