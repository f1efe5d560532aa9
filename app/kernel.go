// Package app assembles the registration application: framework core
// providers, embedded views and the registration routes.
package app

import (
	"github.com/km-arc/go-signup/app/http/views"
	"github.com/km-arc/go-signup/app/providers"
	"github.com/km-arc/go-signup/app/registration"
	fwapp "github.com/km-arc/go-signup/framework/app"
)

// Options configures the application.
type Options struct {
	fwapp.Options
	// Submit runs after every accepted registration, after it is logged.
	Submit registration.SubmitFunc
}

// New creates and boots the application.
//
//	application, err := app.New(app.Options{})
//	if err != nil { ... }
//	return application.Run(ctx)
func New(opts Options) (*fwapp.Application, error) {
	if opts.Views == nil {
		opts.Views = views.FS
	}
	application, err := fwapp.New(opts.Options)
	if err != nil {
		return nil, err
	}
	application.Register(&providers.RegistrationServiceProvider{Submit: opts.Submit})
	application.Boot()
	return application, nil
}
