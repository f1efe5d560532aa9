package validation

import "sort"

// ── Kinds ────────────────────────────────────────────────────────────────────

// Kind classifies why a field failed. Messages are for humans; the kind is
// what callers branch on.
type Kind string

const (
	KindEmptyField    Kind = "empty_field"
	KindInvalidFormat Kind = "invalid_format"
	KindInvalidLength Kind = "invalid_length"
	KindTooWeak       Kind = "too_weak"
	KindMismatch      Kind = "mismatch"
)

// ── FieldError ───────────────────────────────────────────────────────────────

// FieldError is the single error attached to a field after a validation run.
type FieldError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string { return e.Message }

// ── Errors ───────────────────────────────────────────────────────────────────

// Errors holds validation errors keyed by field — the Go side of Laravel's
// MessageBag, reduced to one error per field because rules bail.
// JSON output: {"errors": {"field": {"kind": "...", "message": "..."}}}
type Errors struct {
	Bag map[string]*FieldError `json:"errors"`
}

func (e *Errors) add(field string, kind Kind, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string]*FieldError)
	}
	e.Bag[field] = &FieldError{Kind: kind, Message: msg}
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return e != nil && len(e.Bag) > 0 }

// Get returns the error for a field, or nil.
func (e *Errors) Get(field string) *FieldError {
	if e == nil {
		return nil
	}
	return e.Bag[field]
}

// First returns the message for a field, or "".
func (e *Errors) First(field string) string {
	if fe := e.Get(field); fe != nil {
		return fe.Message
	}
	return ""
}

// Kind returns the failure kind for a field, or "".
func (e *Errors) Kind(field string) Kind {
	if fe := e.Get(field); fe != nil {
		return fe.Kind
	}
	return ""
}

// Fields returns the failing field names in sorted order.
func (e *Errors) Fields() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Bag))
	for field := range e.Bag {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// Only returns a copy holding just the listed fields.
func (e *Errors) Only(fields ...string) *Errors {
	out := &Errors{Bag: make(map[string]*FieldError)}
	for _, field := range fields {
		if fe := e.Get(field); fe != nil {
			out.add(field, fe.Kind, fe.Message)
		}
	}
	return out
}
