package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-signup/framework/config"
	"github.com/km-arc/go-signup/framework/container"
	gohttp "github.com/km-arc/go-signup/framework/http"
	"github.com/km-arc/go-signup/framework/metrics"
	"github.com/km-arc/go-signup/framework/providers"
	"github.com/km-arc/go-signup/framework/routing"
)

// Version is the application version reported by the CLI.
const Version = "0.1.0"

const shutdownTimeout = 10 * time.Second

// Options tunes how the core providers are built.
type Options struct {
	EnvFiles  []string  // .env files, default ".env"
	LogOutput io.Writer // overrides LOG_FILE / stderr
	Views     fs.FS     // template filesystem
}

// Application is the top-level application container.
// It embeds the IoC Container and ProviderRegistry so user code can
// call app.Bind(), app.Singleton(), app.Register() directly —
// exactly like $app in Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework core providers.
// The logger is resolved eagerly so a bad LOG_* setting fails here.
func New(opts Options) (*Application, error) {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	// Register framework core providers (same order as Laravel)
	registry.Register(&providers.ConfigServiceProvider{EnvFiles: opts.EnvFiles})
	registry.Register(&providers.LoggingServiceProvider{Out: opts.LogOutput})
	registry.Register(&providers.MetricsServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})
	registry.Register(&providers.ViewServiceProvider{FS: opts.Views})

	if _, err := container.TryResolve[*zap.Logger](c, "log"); err != nil {
		return nil, fmt.Errorf("app: bootstrap: %w", err)
	}
	return app, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Logger resolves *zap.Logger from the container.
func (a *Application) Logger() *zap.Logger {
	return container.Resolve[*zap.Logger](a.Container, "log")
}

// Metrics resolves *metrics.Collector from the container.
func (a *Application) Metrics() *metrics.Collector {
	return container.Resolve[*metrics.Collector](a.Container, "metrics")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Views resolves *gohttp.ViewEngine from the container.
func (a *Application) Views() *gohttp.ViewEngine {
	return container.Resolve[*gohttp.ViewEngine](a.Container, "view")
}

// Handler boots the application (if needed) and returns the root handler.
func (a *Application) Handler() http.Handler {
	if !a.Providers.Booted() {
		a.Boot()
	}
	return a.Router().Handler()
}

// Run starts the HTTP server on APP_PORT and blocks until ctx is cancelled,
// then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	cfg := a.Config()
	ln, err := net.Listen("tcp", ":"+cfg.App.Port)
	if err != nil {
		return fmt.Errorf("app: listen: %w", err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	handler := a.Handler()
	cfg := a.Config()
	logger := a.Logger()
	defer func() { _ = logger.Sync() }()

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.String("addr", ln.Addr().String()),
			zap.String("url", cfg.App.URL),
			zap.Bool("debug", cfg.App.Debug),
		)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }

// IsProduction reports whether APP_ENV is "production".
func (a *Application) IsProduction() bool { return a.Environment() == "production" }
