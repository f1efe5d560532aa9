package registration

import (
	"fmt"
	"strings"

	"github.com/km-arc/go-signup/framework/validation"
)

// DefaultMinPasswordLength is the password policy used when none is configured.
const DefaultMinPasswordLength = 6

// Policy holds the configurable parts of the schema.
type Policy struct {
	// MinPasswordLength enables the too_weak check; 0 disables it.
	MinPasswordLength int
	// TrimValues trims every value before checks and before submit.
	TrimValues bool
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{MinPasswordLength: DefaultMinPasswordLength}
}

var messages = map[string]string{
	"required":             ":attribute is required",
	"email":                ":attribute must be a valid email address",
	"password":             ":attribute must be at least :min characters",
	"confirmPassword.same": "Passwords do not match",
}

var attributes = map[string]string{
	FieldName:            "Name",
	FieldEmail:           "Email",
	FieldPassword:        "Password",
	FieldConfirmPassword: "Confirm password",
}

// Schema is the registration rule set. It is immutable and safe to share.
type Schema struct {
	policy Policy
	rules  validation.Rules
	opts   []validation.Option
}

// NewSchema builds the rule set for the given policy.
func NewSchema(p Policy) *Schema {
	password := "required"
	if p.MinPasswordLength > 0 {
		password = fmt.Sprintf("required|password:%d", p.MinPasswordLength)
	}

	opts := []validation.Option{
		validation.WithAttributes(attributes),
		validation.WithMessages(messages),
	}
	if p.TrimValues {
		opts = append(opts, validation.WithTrim())
	}

	return &Schema{
		policy: p,
		rules: validation.Rules{
			FieldName:            "required",
			FieldEmail:           "required|email",
			FieldPassword:        password,
			FieldConfirmPassword: "required|same:" + FieldPassword,
		},
		opts: opts,
	}
}

// Policy returns the policy the schema was built with.
func (s *Schema) Policy() Policy { return s.policy }

// Validate checks the whole record.
func (s *Schema) Validate(values FormValues) *validation.Errors {
	return s.ValidateMap(values.Map())
}

// ValidateMap checks a record given as a field map. It satisfies form.Validator.
func (s *Schema) ValidateMap(values map[string]string) *validation.Errors {
	return validation.Make(values, s.rules, s.opts...).Errors()
}

// ValidateField returns the error for one field, evaluated against the full
// record so cross-field rules see current values.
func (s *Schema) ValidateField(values FormValues, field string) (*validation.FieldError, error) {
	if _, err := values.Get(field); err != nil {
		return nil, err
	}
	return s.Validate(values).Get(field), nil
}

// Normalize applies the trimming policy to a record.
func (s *Schema) Normalize(values FormValues) FormValues {
	if !s.policy.TrimValues {
		return values
	}
	return FormValues{
		Name:            strings.TrimSpace(values.Name),
		Email:           strings.TrimSpace(values.Email),
		Password:        strings.TrimSpace(values.Password),
		ConfirmPassword: strings.TrimSpace(values.ConfirmPassword),
	}
}
