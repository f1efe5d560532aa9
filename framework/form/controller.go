package form

import (
	"errors"
	"fmt"

	"github.com/km-arc/go-signup/framework/validation"
)

// ErrUnknownField is returned when an operation names a field the
// controller was not created with.
var ErrUnknownField = errors.New("form: unknown field")

// Validator evaluates the complete current record. It must be pure: the
// controller calls it on every blur and on submit.
type Validator interface {
	Validate(values map[string]string) *validation.Errors
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(values map[string]string) *validation.Errors

// Validate calls f(values).
func (f ValidatorFunc) Validate(values map[string]string) *validation.Errors { return f(values) }

// SubmitFunc receives a copy of the values after a clean validation run.
type SubmitFunc func(values map[string]string)

// Observer is notified after every validation run and every submit attempt.
type Observer interface {
	Validated(trigger Trigger, errs *validation.Errors)
	Submitted(ok bool)
}

// Trigger names what caused a validation run.
type Trigger string

const (
	TriggerBlur   Trigger = "blur"
	TriggerSubmit Trigger = "submit"
)

// State is the per-field lifecycle: Untouched → Valid | Invalid.
type State int

const (
	Untouched State = iota
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "untouched"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers an observer for validation and submit events.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithInitial seeds field values. Unknown keys are ignored.
func WithInitial(values map[string]string) Option {
	return func(c *Controller) {
		for k, v := range values {
			if _, ok := c.values[k]; ok {
				c.values[k] = v
				c.initial[k] = v
			}
		}
	}
}

// Controller owns the mutable state of one form session: values, touched
// and dirty flags, and the latest validation result.
//
// Validation is deferred to blur and submit; typing never validates. Only
// touched fields expose their errors. A Controller is not safe for
// concurrent use; one session owns it.
type Controller struct {
	fields    []string
	initial   map[string]string
	values    map[string]string
	touched   map[string]bool
	dirty     map[string]bool
	result    *validation.Errors
	validator Validator
	submit    SubmitFunc
	observers []Observer
}

// New creates a Controller for the ordered field list. submit may be nil.
func New(fields []string, v Validator, submit SubmitFunc, opts ...Option) *Controller {
	c := &Controller{
		fields:    append([]string(nil), fields...),
		initial:   make(map[string]string, len(fields)),
		values:    make(map[string]string, len(fields)),
		touched:   make(map[string]bool, len(fields)),
		dirty:     make(map[string]bool, len(fields)),
		result:    &validation.Errors{},
		validator: v,
		submit:    submit,
	}
	for _, f := range fields {
		c.values[f] = ""
		c.initial[f] = ""
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fields returns the field names in declaration order.
func (c *Controller) Fields() []string {
	return append([]string(nil), c.fields...)
}

// SetFieldValue stores the value for field. It does not validate.
func (c *Controller) SetFieldValue(field, value string) error {
	if err := c.check(field); err != nil {
		return err
	}
	c.values[field] = value
	c.dirty[field] = true
	return nil
}

// OnFieldBlur marks field touched and re-validates the full record.
func (c *Controller) OnFieldBlur(field string) error {
	if err := c.check(field); err != nil {
		return err
	}
	c.touched[field] = true
	c.validate(TriggerBlur)
	return nil
}

// Submit touches every field and validates. The submit collaborator runs
// only when the result holds no errors. State is kept either way.
func (c *Controller) Submit() bool {
	for _, f := range c.fields {
		c.touched[f] = true
	}
	c.validate(TriggerSubmit)

	ok := !c.result.Has()
	if ok && c.submit != nil {
		c.submit(c.Values())
	}
	for _, o := range c.observers {
		o.Submitted(ok)
	}
	return ok
}

// Reset restores initial values and clears touched, dirty and errors.
func (c *Controller) Reset() {
	for _, f := range c.fields {
		c.values[f] = c.initial[f]
	}
	c.touched = make(map[string]bool, len(c.fields))
	c.dirty = make(map[string]bool, len(c.fields))
	c.result = &validation.Errors{}
}

// ── Reads ────────────────────────────────────────────────────────────────────

// Value returns the current value of field.
func (c *Controller) Value(field string) string { return c.values[field] }

// Values returns a copy of all current values.
func (c *Controller) Values() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Touched reports whether field has been blurred (or submitted) at least once.
func (c *Controller) Touched(field string) bool { return c.touched[field] }

// Dirty reports whether field has been written since creation or Reset.
func (c *Controller) Dirty(field string) bool { return c.dirty[field] }

// FieldError returns the error to display for field: nil unless the field is
// touched and failed the latest validation run.
func (c *Controller) FieldError(field string) *validation.FieldError {
	if !c.touched[field] {
		return nil
	}
	return c.result.Get(field)
}

// VisibleErrors returns the errors of touched fields only.
func (c *Controller) VisibleErrors() *validation.Errors {
	touched := make([]string, 0, len(c.touched))
	for _, f := range c.fields {
		if c.touched[f] {
			touched = append(touched, f)
		}
	}
	return c.result.Only(touched...)
}

// Result returns the unfiltered result of the latest validation run.
func (c *Controller) Result() *validation.Errors { return c.result }

// State returns the lifecycle state of field.
func (c *Controller) State(field string) State {
	switch {
	case !c.touched[field]:
		return Untouched
	case c.result.Get(field) != nil:
		return Invalid
	default:
		return Valid
	}
}

// ── internals ────────────────────────────────────────────────────────────────

func (c *Controller) check(field string) error {
	if _, ok := c.values[field]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func (c *Controller) validate(trigger Trigger) {
	res := c.validator.Validate(c.Values())
	if res == nil {
		res = &validation.Errors{}
	}
	c.result = res
	for _, o := range c.observers {
		o.Validated(trigger, res)
	}
}
