package providers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-signup/app/http/controllers"
	"github.com/km-arc/go-signup/app/registration"
	"github.com/km-arc/go-signup/framework/config"
	"github.com/km-arc/go-signup/framework/container"
	gohttp "github.com/km-arc/go-signup/framework/http"
	"github.com/km-arc/go-signup/framework/metrics"
	"github.com/km-arc/go-signup/framework/routing"
)

// RegistrationServiceProvider binds the registration schema, the submit
// collaborator and the controllers, and registers the routes on Boot.
//
// Bound abstracts:
//   - "registration.schema" → *registration.Schema
//   - "registration.submit" → registration.SubmitFunc
//
// Submit, when set, runs after the log submitter.
type RegistrationServiceProvider struct {
	container.BaseProvider
	Submit registration.SubmitFunc
}

func (p *RegistrationServiceProvider) Register(app *container.Container) {
	app.Singleton("registration.schema", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return registration.NewSchema(registration.Policy{
			MinPasswordLength: cfg.Form.MinPasswordLength,
			TrimValues:        cfg.Form.TrimValues,
		})
	})

	extra := p.Submit
	app.Singleton("registration.submit", func(c *container.Container) any {
		logger := container.Resolve[*zap.Logger](c, "log")
		return registration.Chain(registration.LogSubmitter(logger), extra)
	})
}

func (p *RegistrationServiceProvider) Boot(app *container.Container) {
	cfg := container.Resolve[*config.Config](app, "config")
	logger := container.Resolve[*zap.Logger](app, "log")
	collector := container.Resolve[*metrics.Collector](app, "metrics")
	router := container.Resolve[*routing.Router](app, "router")
	views := container.Resolve[*gohttp.ViewEngine](app, "view")

	deps := controllers.Deps{
		Schema:  container.Resolve[*registration.Schema](app, "registration.schema"),
		Submit:  container.Resolve[registration.SubmitFunc](app, "registration.submit"),
		Metrics: collector,
	}
	registrations := controllers.NewRegistrationController(deps, views, logger, cfg.App.Name)
	sessions := controllers.NewLiveController(deps, logger)

	router.Get("/", registrations.Show)
	router.Post("/register", registrations.Store)
	router.Get("/ws", sessions.Serve)

	router.Prefix("/api", func(api *routing.Router) {
		api.Get("/fields", registrations.Fields)
	})

	router.Handle("/metrics", collector.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		gohttp.NewResponse(w).JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
