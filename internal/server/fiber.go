package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// FiberEngine serves the handler with Fiber
type FiberEngine struct {
	app *fiber.App
}

// NewFiberEngine creates a new Fiber engine
func NewFiberEngine(handler *Handler) *FiberEngine {
	cfg := fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if stderrors.As(err, &fe) {
				code = fe.Code
			}
			// fasthttp rejects bodies over BodyLimit before any route runs
			if code == fiber.StatusRequestEntityTooLarge {
				return writeFiberResponse(c, handler.Handle(Request{
					Method:    http.MethodPost,
					RequestID: c.Get(HeaderRequestID),
					TooLarge:  true,
				}))
			}
			c.Set(fiber.HeaderContentType, contentTypeText)
			return c.Status(code).SendString(err.Error())
		},
	}
	if limit := handler.MaxBodyBytes(); limit > 0 {
		// one extra byte lets the route tell "at the limit" from "over it"
		cfg.BodyLimit = int(limit) + 1
	}

	app := fiber.New(cfg)
	app.Use(recover.New())

	app.All(GeneratePath, func(c *fiber.Ctx) error {
		req := Request{
			Method:    c.Method(),
			RequestID: c.Get(HeaderRequestID),
		}
		if req.Method == http.MethodPost {
			body := c.Body()
			if limit := handler.MaxBodyBytes(); limit > 0 && int64(len(body)) > limit {
				req.TooLarge = true
			} else {
				req.Body = append([]byte(nil), body...)
			}
		}

		return writeFiberResponse(c, handler.Handle(req))
	})

	return &FiberEngine{app: app}
}

func writeFiberResponse(c *fiber.Ctx, resp Response) error {
	for key, values := range resp.Header {
		for _, v := range values {
			c.Set(key, v)
		}
	}
	c.Status(resp.Status)
	if len(resp.Body) == 0 {
		return nil
	}
	return c.Send(resp.Body)
}

// Serve serves on ln
func (fe *FiberEngine) Serve(ln net.Listener) error {
	return fe.app.Listener(ln)
}

// Start starts the server
func (fe *FiberEngine) Start(addr string) error {
	return listenAndServe(fe, addr)
}

// Stop stops the server
func (fe *FiberEngine) Stop(ctx context.Context) error {
	return fe.app.ShutdownWithContext(ctx)
}

// Name returns the engine name
func (fe *FiberEngine) Name() string {
	return "fiber"
}

// GetApp returns the underlying Fiber app
func (fe *FiberEngine) GetApp() *fiber.App {
	return fe.app
}
