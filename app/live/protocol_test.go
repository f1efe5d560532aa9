package live_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-signup/app/live"
	"github.com/km-arc/go-signup/app/registration"
	"github.com/km-arc/go-signup/framework/form"
	"github.com/km-arc/go-signup/framework/validation"
)

func newForm(submitted *[]registration.FormValues) *registration.Form {
	return registration.NewForm(registration.NewSchema(registration.DefaultPolicy()), func(v registration.FormValues) {
		*submitted = append(*submitted, v)
	})
}

func TestApply_ChangeDoesNotValidate(t *testing.T) {
	var got []registration.FormValues
	f := newForm(&got)

	st, err := live.Apply(f, live.Event{Type: live.EventChange, Field: registration.FieldEmail, Value: "bad"})
	require.NoError(t, err)

	assert.Equal(t, live.ReplyState, st.Type)
	assert.Empty(t, st.Errors)
	assert.False(t, st.Submitted)
}

func TestApply_BlurShowsOnlyTouchedErrors(t *testing.T) {
	var got []registration.FormValues
	f := newForm(&got)

	_, err := live.Apply(f, live.Event{Type: live.EventChange, Field: registration.FieldEmail, Value: "bad"})
	require.NoError(t, err)
	st, err := live.Apply(f, live.Event{Type: live.EventBlur, Field: registration.FieldEmail})
	require.NoError(t, err)

	require.Len(t, st.Errors, 1)
	assert.Equal(t, validation.KindInvalidFormat, st.Errors[registration.FieldEmail].Kind)
}

func TestApply_SubmitInvalid(t *testing.T) {
	var got []registration.FormValues
	f := newForm(&got)

	st, err := live.Apply(f, live.Event{Type: live.EventSubmit})
	require.NoError(t, err)

	assert.False(t, st.Submitted)
	assert.Len(t, st.Errors, len(registration.Fields))
	assert.Empty(t, got)
}

func TestApply_SubmitValid(t *testing.T) {
	var got []registration.FormValues
	f := newForm(&got)

	events := []live.Event{
		{Type: live.EventChange, Field: registration.FieldName, Value: "Jo"},
		{Type: live.EventChange, Field: registration.FieldEmail, Value: "jo@x.com"},
		{Type: live.EventChange, Field: registration.FieldPassword, Value: "secret1"},
		{Type: live.EventChange, Field: registration.FieldConfirmPassword, Value: "secret1"},
		{Type: live.EventSubmit},
	}
	var st live.State
	for _, ev := range events {
		var err error
		st, err = live.Apply(f, ev)
		require.NoError(t, err)
	}

	assert.True(t, st.Submitted)
	assert.Empty(t, st.Errors)
	require.Len(t, got, 1)
	assert.Equal(t, registration.FormValues{Name: "Jo", Email: "jo@x.com", Password: "secret1", ConfirmPassword: "secret1"}, got[0])
}

func TestApply_Rejections(t *testing.T) {
	var got []registration.FormValues
	f := newForm(&got)

	_, err := live.Apply(f, live.Event{Type: "focus", Field: registration.FieldName})
	assert.ErrorIs(t, err, live.ErrUnknownEvent)

	_, err = live.Apply(f, live.Event{Type: live.EventBlur, Field: "age"})
	assert.True(t, errors.Is(err, form.ErrUnknownField), "got %v", err)
}

func TestState_JSONShape(t *testing.T) {
	var got []registration.FormValues
	f := newForm(&got)

	raw, err := json.Marshal(live.Snapshot(f, false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"state","errors":{},"submitted":false}`, string(raw))

	raw, err = json.Marshal(live.NewFailure(live.ErrUnknownEvent))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"error","message":"live: unknown event"}`, string(raw))
}

func TestApply_ResetClearsErrors(t *testing.T) {
	var got []registration.FormValues
	f := newForm(&got)

	_, err := live.Apply(f, live.Event{Type: live.EventSubmit})
	require.NoError(t, err)
	st, err := live.Apply(f, live.Event{Type: live.EventReset})
	require.NoError(t, err)

	assert.Empty(t, st.Errors)
	assert.Equal(t, registration.FormValues{}, f.Values())
}
