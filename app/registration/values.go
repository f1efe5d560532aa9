package registration

import (
	"errors"
	"fmt"
)

// Field names as they appear on the wire, in the form and in templates.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// Fields lists every field in render order.
var Fields = []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}

// ErrUnknownField is returned for names outside Fields.
var ErrUnknownField = errors.New("registration: unknown field")

// FormValues is the registration record.
type FormValues struct {
	Name            string `form:"name" json:"name" yaml:"name"`
	Email           string `form:"email" json:"email" yaml:"email"`
	Password        string `form:"password" json:"password" yaml:"password"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword" yaml:"confirmPassword"`
}

// Map returns the values keyed by field name.
func (v FormValues) Map() map[string]string {
	return map[string]string{
		FieldName:            v.Name,
		FieldEmail:           v.Email,
		FieldPassword:        v.Password,
		FieldConfirmPassword: v.ConfirmPassword,
	}
}

// Get returns a single value by field name.
func (v FormValues) Get(field string) (string, error) {
	switch field {
	case FieldName:
		return v.Name, nil
	case FieldEmail:
		return v.Email, nil
	case FieldPassword:
		return v.Password, nil
	case FieldConfirmPassword:
		return v.ConfirmPassword, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// FromMap builds FormValues from a field map; missing keys stay empty.
func FromMap(m map[string]string) FormValues {
	return FormValues{
		Name:            m[FieldName],
		Email:           m[FieldEmail],
		Password:        m[FieldPassword],
		ConfirmPassword: m[FieldConfirmPassword],
	}
}
