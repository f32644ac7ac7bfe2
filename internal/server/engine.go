package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/toyz/testgen/internal/config"
	"github.com/toyz/testgen/internal/errors"
)

// Engine serves the handler through one HTTP framework
type Engine interface {
	// Serve accepts connections on ln until Stop is called
	Serve(ln net.Listener) error
	// Start listens on addr and serves
	Start(addr string) error
	// Stop shuts the server down gracefully
	Stop(ctx context.Context) error
	// Name returns the engine name
	Name() string
}

// NewEngine creates the engine named by name
func NewEngine(name string, handler *Handler) (Engine, error) {
	switch name {
	case config.EngineEcho:
		return NewEchoEngine(handler), nil
	case config.EngineGin:
		return NewGinEngine(handler), nil
	case config.EngineFiber:
		return NewFiberEngine(handler), nil
	default:
		return nil, errors.ConfigurationError("engine", "unknown engine '"+name+"'")
	}
}

func listenAndServe(e Engine, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WrapTransportError(e.Name(), "listen on "+addr, err)
	}
	return e.Serve(ln)
}

// httpEngine runs an http.Handler on its own http.Server so Stop can shut it down
type httpEngine struct {
	server *http.Server
}

func newHTTPEngine(handler http.Handler) httpEngine {
	return httpEngine{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (e httpEngine) serve(ln net.Listener) error {
	return e.server.Serve(ln)
}

func (e httpEngine) stop(ctx context.Context) error {
	return e.server.Shutdown(ctx)
}
