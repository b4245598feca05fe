package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Behyna/payments-engine/internal/api"
	v1 "github.com/Behyna/payments-engine/internal/api/v1"
	"github.com/Behyna/payments-engine/internal/config"
	apperrors "github.com/Behyna/payments-engine/internal/errors"
	"github.com/Behyna/payments-engine/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewLedger,
			NewFiberApp,

			v1.NewHandler,
		),
		fx.Invoke(runServer),
	).Run()
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler()})
}

// NewLedger runs the configured transactions file through the engine
// once at startup; the API serves the resulting account states
// read-only.
func NewLedger(cfg *config.Config, logger *zap.Logger) (service.LedgerService, error) {
	in, err := os.Open(cfg.Engine.InputPath)
	if err != nil {
		return nil, fmt.Errorf("open transactions file: %w", err)
	}
	defer in.Close()

	ledger := service.NewLedgerService(logger)
	processor := service.NewProcessorService(ledger, logger)

	if _, err := processor.Run(context.Background(), in, io.Discard); err != nil {
		return nil, err
	}

	return ledger, nil
}

func runServer(cfg *config.Config, app *fiber.App, handler *v1.Handler, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(":" + cfg.API.Port); err != nil {
					logger.Error("server exited", zap.Error(err))
				}
			}()

			logger.Info("api started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping api")
			return app.Shutdown()
		},
	})
}
