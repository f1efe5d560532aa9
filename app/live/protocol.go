// Package live drives a registration form from client events. The
// websocket controller decodes Events, applies them to the connection's
// form and writes back the resulting State.
package live

import (
	"errors"
	"fmt"

	"github.com/km-arc/go-signup/app/registration"
	"github.com/km-arc/go-signup/framework/validation"
)

// Event types sent by the client.
const (
	EventChange = "change"
	EventBlur   = "blur"
	EventSubmit = "submit"
	EventReset  = "reset"
)

// Reply types sent by the server.
const (
	ReplyState = "state"
	ReplyError = "error"
)

// ErrUnknownEvent is returned for an event type Apply does not handle.
var ErrUnknownEvent = errors.New("live: unknown event")

// Event is one client message.
//
//	{"type":"change","field":"email","value":"jo@x.com"}
//	{"type":"blur","field":"email"}
//	{"type":"submit"}
//	{"type":"reset"}
type Event struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

// State is the server reply after a successfully applied event. Errors holds
// only the visible (touched) field errors.
type State struct {
	Type      string                            `json:"type"`
	Errors    map[string]*validation.FieldError `json:"errors"`
	Submitted bool                              `json:"submitted"`
}

// Failure is the server reply to a malformed or rejected event.
type Failure struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewFailure wraps err as a Failure reply.
func NewFailure(err error) Failure {
	return Failure{Type: ReplyError, Message: err.Error()}
}

// Apply runs ev against f and returns the resulting state. A change event
// never validates, so its state carries the errors from the last blur.
func Apply(f *registration.Form, ev Event) (State, error) {
	submitted := false

	switch ev.Type {
	case EventChange:
		if err := f.SetFieldValue(ev.Field, ev.Value); err != nil {
			return State{}, err
		}
	case EventBlur:
		if err := f.OnFieldBlur(ev.Field); err != nil {
			return State{}, err
		}
	case EventSubmit:
		submitted = f.Submit()
	case EventReset:
		f.Reset()
	default:
		return State{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}

	return Snapshot(f, submitted), nil
}

// Snapshot renders the visible state of f.
func Snapshot(f *registration.Form, submitted bool) State {
	return State{
		Type:      ReplyState,
		Errors:    f.VisibleErrors().Bag,
		Submitted: submitted,
	}
}
