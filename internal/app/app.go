// Package app wires configuration, stores, the ChapterDesk client, the
// onboarding service, and the reconciliation poller into a runnable process.
package app

import (
	"context"
	"log/slog"

	"github.com/greekrow/chaptergate-backend/internal/adapter/memory"
	"github.com/greekrow/chaptergate-backend/internal/adapter/provider/chapterdesk"
	"github.com/greekrow/chaptergate-backend/internal/auth"
	"github.com/greekrow/chaptergate-backend/internal/config"
	"github.com/greekrow/chaptergate-backend/internal/service/onboarding"
	"github.com/greekrow/chaptergate-backend/internal/service/reconcile"
	"github.com/greekrow/chaptergate-backend/internal/transport/events"
	"github.com/greekrow/chaptergate-backend/internal/transport/lognotify"
)

// App holds the wired application. Dispatcher is exported so a chat adapter
// can feed it inbound events; the default build logs outbound traffic via
// lognotify instead of talking to a chat platform.
type App struct {
	Cfg        *config.Config
	Log        *slog.Logger
	Onboarding *onboarding.Service
	Dispatcher *events.Dispatcher

	poller *reconcile.Poller
}

// New wires an App from configuration.
func New(cfg *config.Config, logger *slog.Logger) *App {
	sessions := memory.NewSessionStore()
	correlations := memory.NewCorrelationStore()

	desk := chapterdesk.New(cfg.Chapterdesk.BaseURL, cfg.Chapterdesk.Secret, cfg.Chapterdesk.Timeout, logger)
	tokens := auth.NewActionTokenManager(cfg.Actions.TokenSecret, cfg.Actions.TokenIssuer, cfg.Actions.TokenTTL)

	notify := lognotify.NewNotifier(logger)
	community := lognotify.NewCommunity(logger, cfg.Community.OperatorIDs())

	svc := onboarding.NewService(logger, sessions, correlations, desk, notify, community, tokens)

	a := &App{
		Cfg:        cfg,
		Log:        logger,
		Onboarding: svc,
		Dispatcher: events.NewDispatcher(logger, svc, notify),
	}
	if cfg.Poll.Enabled {
		a.poller = reconcile.NewPoller(logger, desk, notify, tokens, cfg.Poll.Interval)
	}
	return a
}

// Run starts the background poller (when enabled) and blocks until ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.poller != nil {
		go a.poller.Run(ctx)
	} else {
		a.Log.Info("reconciliation polling disabled")
	}

	<-ctx.Done()
	a.Log.Info("shutting down")
	return nil
}

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the App, and runs it until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("chapterdesk_url", cfg.Chapterdesk.BaseURL),
	)

	return New(cfg, logger).Run(ctx)
}
