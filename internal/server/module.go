package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/toyz/testgen/internal/config"
	"github.com/toyz/testgen/internal/errors"
	"github.com/toyz/testgen/internal/generator"
)

// Module provides the cache, handler and engine and binds the engine to the fx lifecycle.
// It expects *config.Config, *zap.Logger and generator.TestGenerator to be provided.
var Module = fx.Module("server",
	fx.Provide(
		ProvideCache,
		ProvideHandler,
		ProvideEngine,
	),
	fx.Invoke(RegisterLifecycle),
)

// ProvideCache builds the result cache from configuration
func ProvideCache(cfg *config.Config) (*ResultCache, error) {
	cache, err := NewResultCache(cfg.CacheSize)
	if err != nil {
		return nil, errors.WrapConfigurationError("cache", "create", err)
	}
	return cache, nil
}

// ProvideHandler builds the generate handler from configuration
func ProvideHandler(cfg *config.Config, gen generator.TestGenerator, cache *ResultCache, logger *zap.Logger) *Handler {
	return NewHandler(gen, cache, logger.Named("http"), Options{
		CORSOrigin:   cfg.CORSOrigin,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})
}

// ProvideEngine builds the configured engine
func ProvideEngine(cfg *config.Config, handler *Handler) (Engine, error) {
	if cfg.Engine == config.EngineGin {
		gin.SetMode(GinMode(cfg.Development))
	}
	return NewEngine(cfg.Engine, handler)
}

// RegisterLifecycle starts the engine on OnStart and shuts it down on OnStop
func RegisterLifecycle(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Addr())
			if err != nil {
				return errors.WrapTransportError(engine.Name(), "listen on "+cfg.Addr(), err)
			}

			logger.Info("server started",
				zap.String("engine", engine.Name()),
				zap.String("addr", ln.Addr().String()),
				zap.String("path", GeneratePath),
			)

			go func() {
				if err := engine.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", zap.String("engine", engine.Name()), zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("server stopping", zap.String("engine", engine.Name()))

			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			if err := engine.Stop(ctx); err != nil {
				return errors.WrapTransportError(engine.Name(), "shut down", err)
			}
			return nil
		},
	})
}
