package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/NoeTobes/FullStackWebApp/internal/api/http"
	"github.com/NoeTobes/FullStackWebApp/internal/api/http/handlers"
	"github.com/NoeTobes/FullStackWebApp/internal/config"
	"github.com/NoeTobes/FullStackWebApp/internal/observability"
	"github.com/NoeTobes/FullStackWebApp/internal/routing"
	"github.com/NoeTobes/FullStackWebApp/internal/service"
	"github.com/NoeTobes/FullStackWebApp/internal/session"
	"github.com/NoeTobes/FullStackWebApp/internal/storage"
	"github.com/NoeTobes/FullStackWebApp/internal/store"
	"github.com/NoeTobes/FullStackWebApp/internal/view"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer kv.Close()

	records := store.NewRecords(kv, logger)
	if err := records.Load(ctx); err != nil {
		logger.Fatal("failed to load record store", zap.Error(err))
	}

	sess := session.New()
	toasts := view.NewToastCenter()
	doc := view.NewDocument()

	htmlRenderer, err := view.NewHTMLRenderer()
	if err != nil {
		logger.Fatal("failed to build renderer", zap.Error(err))
	}
	pageRenderer := view.NewPageRenderer(htmlRenderer, doc, sess, records, toasts, logger)

	metrics := observability.NewMetrics()
	router := routing.NewRouter(sess, pageRenderer, toasts, logger, metrics)
	accountService := service.NewAccountService(records, sess, router, logger)

	if err := accountService.RestoreSession(ctx); err != nil {
		logger.Warn("session restore failed", zap.Error(err))
	}
	router.Navigate(routing.PathHome)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, kv)
	pagesHandler := handlers.NewPagesHandler(router, doc)
	accountsHandler := handlers.NewAccountsHandler(accountService, router, pageRenderer, toasts)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   healthHandler,
		Pages:    pagesHandler,
		Accounts: accountsHandler,
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
