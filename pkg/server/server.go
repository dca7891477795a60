package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bilreport/pkg/inventory"
	"bilreport/pkg/log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10

// ReportServer serves the inventory report dashboard and its JSON API.
// Every request re-fetches and re-derives the report; the server holds no
// state between renders.
type ReportServer struct {
	client  *inventory.Client
	webDir  string
	echo    *echo.Echo
	version string
	now     func() time.Time // Injectable clock for the report-date label
}

func NewReportServer(client *inventory.Client, webDir, version string) *ReportServer {
	return &ReportServer{
		client:  client,
		webDir:  webDir,
		echo:    echo.New(),
		version: version,
		now:     time.Now,
	}
}

func (rs *ReportServer) Start(addr string) error {
	rs.setupRoutes()

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("addr", addr).
			Str("report_url", rs.client.URL()).
			Str("version", rs.version).
			Str("web_dir", rs.webDir).
			Msg("Starting report server")

		if err := rs.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return rs.Shutdown()
}

func (rs *ReportServer) Shutdown() error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout*time.Second)
	defer cancel()

	if err := rs.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

func (rs *ReportServer) setupRoutes() {
	// Echo configuration
	rs.echo.HideBanner = true
	rs.echo.HidePort = true
	// Setup middleware with custom logger
	rs.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${status} ${method} ${uri} (${latency_human})\n",
	}))
	rs.echo.Use(middleware.Recover())

	// Setup routes
	rs.echo.GET("/", rs.serveDashboard)
	rs.echo.GET("/healthz", rs.healthz)
	rs.echo.GET("/api/report", rs.getReport)
	rs.echo.GET("/api/collections", rs.getCollections)
	rs.echo.GET("/api/collections/:code", rs.getCollection)
}

// healthz reports liveness without touching the upstream archive.
func (rs *ReportServer) healthz(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": rs.version,
	})
}
