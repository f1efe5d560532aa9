// Package controllers holds the HTTP handlers of the registration app.
package controllers

import (
	"net/http"

	"github.com/km-arc/go-signup/app/registration"
	"github.com/km-arc/go-signup/framework/form"
	gohttp "github.com/km-arc/go-signup/framework/http"
	"github.com/km-arc/go-signup/framework/metrics"
)

// Controller is an embeddable base for HTTP controllers.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}

// Deps are the collaborators shared by the registration controllers.
type Deps struct {
	Schema  *registration.Schema
	Submit  registration.SubmitFunc
	Metrics *metrics.Collector // optional
}

// newForm opens a fresh session with the metrics observer attached.
func (d Deps) newForm() *registration.Form {
	var opts []form.Option
	if d.Metrics != nil {
		opts = append(opts, form.WithObserver(d.Metrics))
	}
	return registration.NewForm(d.Schema, d.Submit, opts...)
}
