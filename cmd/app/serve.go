package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canteen/cmd"
	httpadapter "canteen/internal/adapters/in/http"
	"canteen/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API, the WebSocket hub and the scheduled jobs",
	RunE: func(c *cobra.Command, _ []string) error {
		configs := getConfigs()
		logger := cmd.NewLogger(configs.AppEnv)

		ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := cmd.NewCompositionRoot(ctx, configs, logger)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := app.Close(); closeErr != nil {
				logger.Error("Failed to close connections", "error", closeErr)
			}
		}()

		return serve(ctx, app, configs, logger)
	},
}

func serve(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	go app.Hub().Run(ctx)

	if sub := app.Subscriber(); sub != nil {
		go func() {
			if err := sub.Run(ctx, nil); err != nil {
				logger.ErrorContext(ctx, "Redis subscriber stopped", "error", err)
			}
		}()
	}

	jobManager := jobs.NewJobManager(app.Dispatcher(), configs.StatisticsSchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := newWebServer(app, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newWebServer(app *cmd.CompositionRoot, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.HTTPErrorHandler = httpadapter.ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(app.Metrics().Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(app.Metrics().Handler()))
	e.GET("/ws", app.Hub().Handler())

	httpadapter.NewServer(app.HTTPHandlers()).Register(e)
	return e
}
