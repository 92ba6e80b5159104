// Package server exposes calendar conversions as a JSON HTTP service.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	calendar "github.com/SebastiaanKlippert/go-calendar"
)

// shutdownTimeout is how long in-flight requests get to finish on shutdown.
const shutdownTimeout = 10 * time.Second

// Server holds the Echo instance and the calendar used when a request
// names none.
type Server struct {
	Echo *echo.Echo

	calendar calendar.Calendar
	logger   *slog.Logger
}

// New creates a server answering in defaultCal unless a request asks for
// another calendar. A nil logger uses slog.Default.
func New(defaultCal calendar.Calendar, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{Echo: e, calendar: defaultCal, logger: logger}
	e.HTTPErrorHandler = s.errorHandler

	// Logging wraps recovery so that recovered panics are logged as 500s.
	e.Use(requestLogger(logger))
	e.Use(recovery(logger))

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/healthz", s.health)

	v1 := s.Echo.Group("/v1")
	v1.GET("/jdn/:jdn", s.atJDN)
	v1.GET("/date/:year/:month/:day", s.atYMD)
	v1.GET("/ordinal/:year/:ordinal", s.atOrdinal)
	v1.GET("/month/:year/:month", s.monthShape)
	v1.GET("/year/:year", s.year)
	v1.GET("/gap", s.gap)
}

// Start serves on addr until ctx is cancelled, then drains connections.
func (s *Server) Start(ctx context.Context, addr string) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", addr), slog.String("calendar", s.calendar.String()))
		errc <- s.Echo.Start(addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
