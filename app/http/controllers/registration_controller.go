package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-signup/app/registration"
	gohttp "github.com/km-arc/go-signup/framework/http"
	"github.com/km-arc/go-signup/framework/validation"
)

// RegistrationController renders the form and accepts plain form posts.
type RegistrationController struct {
	Controller
	deps    Deps
	views   *gohttp.ViewEngine
	logger  *zap.Logger
	appName string
}

// NewRegistrationController wires the controller.
func NewRegistrationController(deps Deps, views *gohttp.ViewEngine, logger *zap.Logger, appName string) *RegistrationController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationController{deps: deps, views: views, logger: logger, appName: appName}
}

// fieldRow is one rendered input.
type fieldRow struct {
	registration.FieldDescriptor
	Value string
	Error *validation.FieldError
}

type registerPage struct {
	AppName   string
	Fields    []fieldRow
	Submitted bool
}

// Show handles GET /.
func (rc *RegistrationController) Show(w http.ResponseWriter, r *http.Request) {
	page, err := rc.page(nil, false)
	if err != nil {
		rc.logger.Error("render register page", zap.Error(err))
		rc.Response(w).Error(http.StatusInternalServerError, "Server Error.")
		return
	}
	rc.views.View(w, "register", page)
}

// Store handles POST /register. JSON callers get 201 {"data": ...} or
// 422 {"errors": ...}; browsers get the page back with every field touched.
func (rc *RegistrationController) Store(w http.ResponseWriter, r *http.Request) {
	req, res := rc.Request(r), rc.Response(w)

	var values registration.FormValues
	if err := req.Bind(&values); err != nil {
		res.Error(http.StatusBadRequest, "malformed request body")
		return
	}

	f := rc.deps.newForm()
	f.SetValues(values)
	ok := f.Submit()

	if req.IsJSON() {
		if !ok {
			res.ValidationError(f.VisibleErrors())
			return
		}
		accepted := rc.deps.Schema.Normalize(f.Values())
		res.Created(map[string]string{
			registration.FieldName:  accepted.Name,
			registration.FieldEmail: accepted.Email,
		})
		return
	}

	status := http.StatusCreated
	shown := f
	if !ok {
		status = http.StatusUnprocessableEntity
	} else {
		shown = nil // a fresh form after success
	}
	page, err := rc.page(shown, ok)
	if err != nil {
		rc.logger.Error("render register page", zap.Error(err))
		res.Error(http.StatusInternalServerError, "Server Error.")
		return
	}
	rc.views.ViewStatus(w, status, "register", page)
}

// Fields handles GET /api/fields.
func (rc *RegistrationController) Fields(w http.ResponseWriter, r *http.Request) {
	res := rc.Response(w)
	ds, err := registration.Descriptors()
	if err != nil {
		rc.logger.Error("load field descriptors", zap.Error(err))
		res.Error(http.StatusInternalServerError, "Server Error.")
		return
	}
	res.Success(ds)
}

// page builds the template data. Secret inputs are never echoed back.
func (rc *RegistrationController) page(f *registration.Form, submitted bool) (registerPage, error) {
	ds, err := registration.Descriptors()
	if err != nil {
		return registerPage{}, err
	}
	page := registerPage{AppName: rc.appName, Submitted: submitted}
	for _, d := range ds {
		row := fieldRow{FieldDescriptor: d}
		if f != nil {
			row.Error = f.FieldError(d.Name)
			if !d.Secret() {
				row.Value, _ = f.Values().Get(d.Name)
			}
		}
		page.Fields = append(page.Fields, row)
	}
	return page, nil
}
