package app_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-signup/app"
	"github.com/km-arc/go-signup/app/registration"
	fwapp "github.com/km-arc/go-signup/framework/app"
)

func newServer(t *testing.T, submit registration.SubmitFunc) *httptest.Server {
	t.Helper()
	application, err := app.New(app.Options{
		Options: fwapp.Options{
			EnvFiles:  []string{filepath.Join(t.TempDir(), "missing.env")},
			LogOutput: io.Discard,
		},
		Submit: submit,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRoutes(t *testing.T) {
	srv := newServer(t, nil)

	tests := []struct {
		path string
		want string
	}{
		{"/", `name="confirmPassword"`},
		{"/api/fields", `"inputType":"email"`},
		{"/healthz", `"status":"ok"`},
		{"/metrics", `signup_live_sessions{app="GoSignup"} 0`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, body := get(t, srv.URL+tt.path)
			assert.Equal(t, http.StatusOK, code)
			assert.Contains(t, body, tt.want)
		})
	}
}

func TestRegister_UsesConfiguredPolicy(t *testing.T) {
	t.Setenv("FORM_PASSWORD_MIN", "10")

	var got []registration.FormValues
	srv := newServer(t, func(v registration.FormValues) { got = append(got, v) })

	form := url.Values{
		"name":            {"Jo"},
		"email":           {"jo@x.com"},
		"password":        {"secret1"},
		"confirmPassword": {"secret1"},
	}
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/register", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), `"kind":"too_weak"`)
	assert.Contains(t, string(body), "at least 10 characters")
	assert.Empty(t, got)
}
