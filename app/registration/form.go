package registration

import (
	"github.com/km-arc/go-signup/framework/form"
	"github.com/km-arc/go-signup/framework/validation"
)

// SubmitFunc is the submit collaborator. It only ever sees records that
// passed the schema.
type SubmitFunc func(values FormValues)

// Form is one registration session: a form.Controller bound to the schema
// with typed values.
type Form struct {
	schema *Schema
	ctl    *form.Controller
}

// NewForm creates an empty, untouched session. submit may be nil.
func NewForm(schema *Schema, submit SubmitFunc, opts ...form.Option) *Form {
	f := &Form{schema: schema}
	f.ctl = form.New(Fields, form.ValidatorFunc(schema.ValidateMap), func(values map[string]string) {
		if submit != nil {
			submit(schema.Normalize(FromMap(values)))
		}
	}, opts...)
	return f
}

// SetFieldValue records a keystroke-level change. It does not validate.
func (f *Form) SetFieldValue(field, value string) error {
	return f.ctl.SetFieldValue(field, value)
}

// SetValues writes every field. It does not validate.
func (f *Form) SetValues(values FormValues) {
	for field, value := range values.Map() {
		_ = f.ctl.SetFieldValue(field, value)
	}
}

// OnFieldBlur touches field and re-validates the record.
func (f *Form) OnFieldBlur(field string) error {
	return f.ctl.OnFieldBlur(field)
}

// Submit validates everything and calls the collaborator only on success.
func (f *Form) Submit() bool { return f.ctl.Submit() }

// Reset clears values, touched flags and errors.
func (f *Form) Reset() { f.ctl.Reset() }

// Values returns the current record.
func (f *Form) Values() FormValues { return FromMap(f.ctl.Values()) }

// FieldError returns the visible error for field, if any.
func (f *Form) FieldError(field string) *validation.FieldError {
	return f.ctl.FieldError(field)
}

// VisibleErrors returns the errors of touched fields.
func (f *Form) VisibleErrors() *validation.Errors { return f.ctl.VisibleErrors() }

// Controller exposes the underlying controller for generic renderers.
func (f *Form) Controller() *form.Controller { return f.ctl }

// Schema returns the schema the form validates against.
func (f *Form) Schema() *Schema { return f.schema }
