// Package tui runs a registration session in the terminal. Each answer is
// a change followed by a blur; after one pass over the fields the session
// submits and then re-asks only the fields that are still invalid.
package tui

import (
	"context"
	"fmt"

	"github.com/km-arc/go-signup/app/registration"
)

// Session drives one registration form through a PromptDriver.
type Session struct {
	form        *registration.Form
	driver      PromptDriver
	descriptors []registration.FieldDescriptor
}

// NewSession creates a session for f.
func NewSession(f *registration.Form, driver PromptDriver) (*Session, error) {
	ds, err := registration.Descriptors()
	if err != nil {
		return nil, err
	}
	return &Session{form: f, driver: driver, descriptors: ds}, nil
}

// Run prompts until the form submits, the driver fails, or ctx ends.
// errors.Is(err, ErrAborted) reports a user interrupt.
func (s *Session) Run(ctx context.Context) error {
	pending := s.descriptors
	for {
		for _, d := range pending {
			if err := s.ask(ctx, d); err != nil {
				return err
			}
		}

		if s.form.Submit() {
			return s.driver.Info(ctx, "Registration submitted.")
		}

		pending = pending[:0:0]
		for _, d := range s.descriptors {
			if s.form.FieldError(d.Name) != nil {
				pending = append(pending, d)
			}
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("%d field(s) need attention.", len(pending))); err != nil {
			return err
		}
	}
}

func (s *Session) ask(ctx context.Context, d registration.FieldDescriptor) error {
	cfg := InputConfig{Message: d.Label + ":"}
	if fe := s.form.FieldError(d.Name); fe != nil {
		cfg.Help = fe.Message
	}

	var (
		value string
		err   error
	)
	if d.Secret() {
		value, err = s.driver.Password(ctx, cfg)
	} else {
		cfg.Default, _ = s.form.Values().Get(d.Name)
		value, err = s.driver.Input(ctx, cfg)
	}
	if err != nil {
		return fmt.Errorf("tui: %s: %w", d.Name, err)
	}

	if err := s.form.SetFieldValue(d.Name, value); err != nil {
		return err
	}
	if err := s.form.OnFieldBlur(d.Name); err != nil {
		return err
	}
	if fe := s.form.FieldError(d.Name); fe != nil {
		return s.driver.Info(ctx, "  ✗ "+fe.Message)
	}
	return nil
}
