package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-signup/framework/validation"
)

var testFields = []string{"name", "email", "password", "confirmPassword"}

var testRules = validation.Rules{
	"name":            "required",
	"email":           "required|email",
	"password":        "required|password:6",
	"confirmPassword": "required|same:password",
}

type countingValidator struct {
	calls int
	last  map[string]string
}

func (v *countingValidator) Validate(values map[string]string) *validation.Errors {
	v.calls++
	v.last = values
	return validation.Make(values, testRules).Errors()
}

type recordingObserver struct {
	triggers []Trigger
	submits  []bool
}

func (o *recordingObserver) Validated(trigger Trigger, _ *validation.Errors) {
	o.triggers = append(o.triggers, trigger)
}

func (o *recordingObserver) Submitted(ok bool) { o.submits = append(o.submits, ok) }

func newTestController(t *testing.T) (*Controller, *countingValidator, *[]map[string]string) {
	t.Helper()
	v := &countingValidator{}
	var submitted []map[string]string
	c := New(testFields, v, func(values map[string]string) {
		submitted = append(submitted, values)
	})
	return c, v, &submitted
}

func fill(t *testing.T, c *Controller, values map[string]string) {
	t.Helper()
	for _, f := range c.Fields() {
		require.NoError(t, c.SetFieldValue(f, values[f]))
	}
}

func TestNewStartsEmptyAndUntouched(t *testing.T) {
	c, _, _ := newTestController(t)

	for _, f := range testFields {
		assert.Equal(t, "", c.Value(f))
		assert.False(t, c.Touched(f))
		assert.Equal(t, Untouched, c.State(f))
		assert.Nil(t, c.FieldError(f))
	}
	assert.False(t, c.Result().Has())
}

func TestSetFieldValueDoesNotValidate(t *testing.T) {
	c, v, _ := newTestController(t)

	require.NoError(t, c.SetFieldValue("email", "bad"))

	assert.Equal(t, 0, v.calls)
	assert.Equal(t, "bad", c.Value("email"))
	assert.True(t, c.Dirty("email"))
	assert.False(t, c.Touched("email"))
}

func TestUnknownField(t *testing.T) {
	c, _, _ := newTestController(t)

	assert.True(t, errors.Is(c.SetFieldValue("age", "3"), ErrUnknownField))
	assert.True(t, errors.Is(c.OnFieldBlur("age"), ErrUnknownField))
}

func TestEmptyFieldAfterBlur(t *testing.T) {
	for _, f := range testFields {
		t.Run(f, func(t *testing.T) {
			c, _, _ := newTestController(t)
			require.NoError(t, c.OnFieldBlur(f))

			fe := c.FieldError(f)
			require.NotNil(t, fe)
			assert.Equal(t, validation.KindEmptyField, fe.Kind)
			assert.Equal(t, Invalid, c.State(f))
		})
	}
}

func TestBlurValidatesFullRecord(t *testing.T) {
	c, v, _ := newTestController(t)
	fill(t, c, map[string]string{"password": "secret1", "confirmPassword": "secret2"})

	require.NoError(t, c.OnFieldBlur("confirmPassword"))

	assert.Equal(t, 1, v.calls)
	assert.Equal(t, "secret1", v.last["password"], "validator must see untouched fields too")
	assert.Equal(t, validation.KindMismatch, c.FieldError("confirmPassword").Kind)
}

func TestUntouchedFieldsStayQuiet(t *testing.T) {
	c, _, _ := newTestController(t)
	fill(t, c, map[string]string{"email": "jo@x.com"})

	require.NoError(t, c.OnFieldBlur("email"))

	assert.Nil(t, c.FieldError("email"))
	assert.Equal(t, Valid, c.State("email"))
	assert.Nil(t, c.FieldError("name"), "untouched empty name must not show an error")
	assert.NotNil(t, c.Result().Get("name"), "raw result still knows about name")
	assert.Equal(t, []string(nil), nilIfEmpty(c.VisibleErrors().Fields()))
}

func TestSubmitInvalidNeverCallsCollaborator(t *testing.T) {
	c, _, submitted := newTestController(t)
	fill(t, c, map[string]string{"name": "", "email": "bad", "password": "a", "confirmPassword": "b"})
	for _, f := range testFields {
		require.NoError(t, c.OnFieldBlur(f))
	}

	assert.False(t, c.Submit())
	assert.Empty(t, *submitted)

	visible := c.VisibleErrors()
	assert.Equal(t, validation.KindEmptyField, visible.Kind("name"))
	assert.Equal(t, validation.KindInvalidFormat, visible.Kind("email"))
	assert.Equal(t, validation.KindTooWeak, visible.Kind("password"))
	assert.Equal(t, validation.KindMismatch, visible.Kind("confirmPassword"))
}

func TestSubmitTouchesAllFields(t *testing.T) {
	c, _, _ := newTestController(t)

	assert.False(t, c.Submit())
	for _, f := range testFields {
		assert.True(t, c.Touched(f))
		assert.NotNil(t, c.FieldError(f))
	}
}

func TestSubmitValidCallsCollaboratorOnce(t *testing.T) {
	c, _, submitted := newTestController(t)
	record := map[string]string{"name": "Jo", "email": "jo@x.com", "password": "secret1", "confirmPassword": "secret1"}
	fill(t, c, record)

	assert.True(t, c.Submit())
	require.Len(t, *submitted, 1)
	assert.Equal(t, record, (*submitted)[0])
	assert.False(t, c.VisibleErrors().Has())

	// A successful submit leaves state in place.
	assert.Equal(t, "Jo", c.Value("name"))
	assert.True(t, c.Touched("name"))
}

func TestSubmitHandsOverACopy(t *testing.T) {
	c, _, submitted := newTestController(t)
	fill(t, c, map[string]string{"name": "Jo", "email": "jo@x.com", "password": "secret1", "confirmPassword": "secret1"})
	require.True(t, c.Submit())

	(*submitted)[0]["name"] = "mutated"
	assert.Equal(t, "Jo", c.Value("name"))
}

func TestRevalidationIsIdempotent(t *testing.T) {
	c, _, _ := newTestController(t)
	fill(t, c, map[string]string{"password": "secret1", "confirmPassword": "secret1"})

	require.NoError(t, c.OnFieldBlur("confirmPassword"))
	first := c.Result().Bag
	require.NoError(t, c.OnFieldBlur("confirmPassword"))

	assert.Equal(t, first, c.Result().Bag)
	assert.Nil(t, c.FieldError("confirmPassword"))
}

func TestNilSubmitFunc(t *testing.T) {
	c := New([]string{"name"}, ValidatorFunc(func(map[string]string) *validation.Errors { return nil }), nil)
	assert.True(t, c.Submit())
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	c := New(testFields, &countingValidator{}, nil, WithObserver(obs))

	require.NoError(t, c.OnFieldBlur("name"))
	c.Submit()

	assert.Equal(t, []Trigger{TriggerBlur, TriggerSubmit}, obs.triggers)
	assert.Equal(t, []bool{false}, obs.submits)
}

func TestResetRestoresInitial(t *testing.T) {
	c := New(testFields, &countingValidator{}, nil, WithInitial(map[string]string{"name": "Jo", "unknown": "x"}))
	require.NoError(t, c.SetFieldValue("name", "Al"))
	c.Submit()

	c.Reset()

	assert.Equal(t, "Jo", c.Value("name"))
	assert.False(t, c.Touched("name"))
	assert.False(t, c.Dirty("name"))
	assert.False(t, c.Result().Has())
	_, hasUnknown := c.Values()["unknown"]
	assert.False(t, hasUnknown)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "untouched", Untouched.String())
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "invalid", Invalid.String())
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
