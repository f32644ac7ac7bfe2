package server

import (
	"context"
	"net"

	"github.com/gin-gonic/gin"
)

// GinEngine serves the handler with Gin
type GinEngine struct {
	engine *gin.Engine
	http   httpEngine
}

// GinMode returns the gin mode for a deployment; debug mode prints route and warning banners
func GinMode(development bool) string {
	if development {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// NewGinEngine creates a new Gin engine
func NewGinEngine(handler *Handler) *GinEngine {
	g := gin.New()
	g.Use(gin.Recovery())

	g.Any(GeneratePath, func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	})

	return &GinEngine{
		engine: g,
		http:   newHTTPEngine(g),
	}
}

// Serve serves on ln
func (ge *GinEngine) Serve(ln net.Listener) error {
	return ge.http.serve(ln)
}

// Start starts the server
func (ge *GinEngine) Start(addr string) error {
	return listenAndServe(ge, addr)
}

// Stop stops the server
func (ge *GinEngine) Stop(ctx context.Context) error {
	return ge.http.stop(ctx)
}

// Name returns the engine name
func (ge *GinEngine) Name() string {
	return "gin"
}

// GetEngine returns the underlying Gin engine
func (ge *GinEngine) GetEngine() *gin.Engine {
	return ge.engine
}
