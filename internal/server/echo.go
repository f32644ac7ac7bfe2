package server

import (
	"context"
	"net"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// EchoEngine serves the handler with Echo v4
type EchoEngine struct {
	echo *echo.Echo
	http httpEngine
}

// NewEchoEngine creates a new Echo engine
func NewEchoEngine(handler *Handler) *EchoEngine {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.Any(GeneratePath, func(c echo.Context) error {
		handler.ServeHTTP(c.Response(), c.Request())
		return nil
	})

	return &EchoEngine{
		echo: e,
		http: newHTTPEngine(e),
	}
}

// Serve serves on ln
func (ee *EchoEngine) Serve(ln net.Listener) error {
	return ee.http.serve(ln)
}

// Start starts the server
func (ee *EchoEngine) Start(addr string) error {
	return listenAndServe(ee, addr)
}

// Stop stops the server
func (ee *EchoEngine) Stop(ctx context.Context) error {
	return ee.http.stop(ctx)
}

// Name returns the engine name
func (ee *EchoEngine) Name() string {
	return "echo"
}

// GetEngine returns the underlying Echo instance
func (ee *EchoEngine) GetEngine() *echo.Echo {
	return ee.echo
}
