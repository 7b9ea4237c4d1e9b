package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/DjordjeVuckovic/sci-calc/internal/apperr"
	mw "github.com/DjordjeVuckovic/sci-calc/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/sci-calc/pkg/server"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type HealthResponse struct {
	Status string `json:"status"`
}

// Server wraps echo with the middleware, error handling and lifecycle the
// API needs. Setup methods return the server so they can be chained.
type Server struct {
	Echo *echo.Echo

	cfg           *Config
	healthChecker pkgserver.HealthChecker

	ctx      context.Context
	stop     context.CancelFunc
	shutdown chan struct{}
}

// New creates the server; its health check reports ok until a checker is
// set with WithHealthChecker.
func New(cfg *Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:          e,
		cfg:           cfg,
		healthChecker: pkgserver.NewOkHealthChecker(),
		ctx:           ctx,
		stop:          stop,
		shutdown:      make(chan struct{}),
	}
}

func (s *Server) WithHealthChecker(hc pkgserver.HealthChecker) *Server {
	s.healthChecker = hc
	return s
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger(mw.WithSkipPaths("/health")))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.Echo.GET(path, s.healthHandler)
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// healthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (s *Server) healthHandler(c echo.Context) error {
	if !s.healthChecker.Healthy(c.Request().Context()) {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Context is cancelled on SIGINT or SIGTERM.
func (s *Server) Context() context.Context {
	return s.ctx
}

// ShutdownSignal is closed once the server has stopped accepting requests.
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.shutdown
}

func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-s.ctx.Done():
	case err := <-errCh:
		close(s.shutdown)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	err := s.Echo.Shutdown(ctx)
	close(s.shutdown)
	return err
}
