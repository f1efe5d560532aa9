package providers

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/km-arc/go-signup/framework/config"
	"github.com/km-arc/go-signup/framework/container"
	gohttp "github.com/km-arc/go-signup/framework/http"
	"github.com/km-arc/go-signup/framework/logging"
	"github.com/km-arc/go-signup/framework/metrics"
	"github.com/km-arc/go-signup/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound abstracts:
//   - "config"  → *config.Config
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->singleton('config', fn() => new Repository($items));
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	app.Alias("config", "configuration")
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the zap logger from config.Log.
//
// Bound abstracts:
//   - "log"     → *zap.Logger
//   - "logger"  → alias of "log"
//
// Out, when set, replaces the configured destination (stderr or LOG_FILE).
type LoggingServiceProvider struct {
	container.BaseProvider
	Out io.Writer
}

func (p *LoggingServiceProvider) Register(app *container.Container) {
	out := p.Out
	app.Singleton("log", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")

		var (
			logger *zap.Logger
			err    error
		)
		if out != nil {
			logger, err = logging.NewWithWriter(cfg.Log, out)
		} else {
			logger, err = logging.New(cfg.Log)
		}
		if err != nil {
			panic(fmt.Errorf("providers: logger: %w", err))
		}
		return logger.With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env))
	})
	app.Alias("log", "logger")
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider registers the Prometheus collectors on a private
// registry. Every series carries an "app" label set to APP_NAME.
//
// Bound abstracts:
//   - "metrics" → *metrics.Collector
type MetricsServiceProvider struct {
	container.BaseProvider
	Namespace string // default: "signup"
}

func (p *MetricsServiceProvider) Register(app *container.Container) {
	namespace := p.Namespace
	app.Singleton("metrics", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		opts := []metrics.Option{
			metrics.WithConstLabels(prometheus.Labels{"app": cfg.App.Name}),
		}
		if namespace != "" {
			opts = append(opts, metrics.WithNamespace(namespace))
		}
		return metrics.New(opts...)
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router with the access log wired
// to "log".
//
// Bound abstracts:
//   - "router"  → *routing.Router
//
// Laravel equivalent:
//
//	// Illuminate\Routing\RoutingServiceProvider
//	$app->singleton('router', fn($app) => new Router($app['events'], $app));
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		return routing.New(container.Resolve[*zap.Logger](c, "log"))
	})
}

// ── ViewServiceProvider ───────────────────────────────────────────────────────

// ViewServiceProvider registers the template engine.
//
// Bound abstracts:
//   - "view"   → *gohttp.ViewEngine
//
// Laravel equivalent:
//
//	// Illuminate\View\ViewServiceProvider
//	$app->singleton('view', fn($app) => new Factory(...));
type ViewServiceProvider struct {
	container.BaseProvider
	FS  fs.FS  // template filesystem, usually an embed.FS
	Ext string // file extension, default: ".html"
}

func (p *ViewServiceProvider) Register(app *container.Container) {
	fsys := p.FS
	ext := p.Ext
	if ext == "" {
		ext = ".html"
	}

	app.Singleton("view", func(c *container.Container) any {
		return gohttp.NewViewEngine(fsys, ext)
	})
}
