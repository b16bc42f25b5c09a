package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/quickcommerce/crm-portal/internal/api/http"
	"github.com/quickcommerce/crm-portal/internal/api/http/handlers"
	"github.com/quickcommerce/crm-portal/internal/audit"
	"github.com/quickcommerce/crm-portal/internal/auth"
	"github.com/quickcommerce/crm-portal/internal/config"
	"github.com/quickcommerce/crm-portal/internal/events"
	"github.com/quickcommerce/crm-portal/internal/observability"
	"github.com/quickcommerce/crm-portal/internal/service"
	"github.com/quickcommerce/crm-portal/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// state must rehydrate before any route can consult the session
	state, err := store.NewFileStore(cfg.Storage.StateDir)
	if err != nil {
		logger.Fatal("failed to open state dir", zap.Error(err))
	}
	roster, err := store.NewRoster(state, logger)
	if err != nil {
		logger.Fatal("failed to rehydrate roster", zap.Error(err))
	}
	sessions, err := store.NewSessionStore(state, logger)
	if err != nil {
		logger.Fatal("failed to rehydrate session", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher(logger)
	activity := audit.NewRecorder(logger)
	activity.RegisterHandlers(dispatcher)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		Roster:     roster,
		Sessions:   sessions,
		Dispatcher: dispatcher,
	})
	adminService := service.NewAdminService(roster, dispatcher)
	guard := auth.NewGuard(sessions)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, state),
		Auth:      handlers.NewAuthHandler(authService, cfg.App.Name),
		Admins:    handlers.NewAdminsHandler(adminService),
		Dashboard: handlers.NewDashboardHandler(sessions, activity),
		Guard:     guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
