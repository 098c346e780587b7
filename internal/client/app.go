// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/tui"
	"github.com/MKhiriev/go-contact-keeper/internal/workers"
)

type App struct {
	services   *service.ClientServices
	tui        *tui.TUI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are not provided")
	}
	if ui == nil {
		return nil, fmt.Errorf("ui is not provided")
	}

	return &App{services: services, tui: ui, workersCfg: workersCfg, logger: log}, nil
}

// Run drives one full session: authenticate, bring the local contact set
// up to date, launch the periodic sync and enter the main loop. Logout
// restarts the session from the login screen.
func (a *App) Run() error {
	ctx := context.Background()

	userID, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.services.ContactService.SetUser(userID)

	// A failed first sync is not fatal: the client works from the local
	// store and retries on the background ticker.
	if err = a.services.SyncService.FullSync(ctx, userID); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed, continuing offline")
	}
	if err = a.services.ContactService.RefreshSnapshots(ctx); err != nil {
		return fmt.Errorf("load local contacts: %w", err)
	}

	background := workers.NewWorkers(
		workers.NewSyncWorker(ctx, a.services.SyncJob, userID, a.workersCfg.SyncInterval),
	)
	background.Run()
	defer a.services.SyncJob.Stop()

	logout, err := a.tui.MainLoop(ctx, userID)
	if err != nil {
		return err
	}
	if logout {
		a.services.SyncJob.Stop()
		return a.Run()
	}

	return nil
}
