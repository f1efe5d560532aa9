package app_test

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/km-arc/go-signup/framework/app"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newApp(t *testing.T, logs io.Writer) *app.Application {
	t.Helper()
	a, err := app.New(app.Options{
		EnvFiles:  []string{filepath.Join(t.TempDir(), "missing.env")},
		LogOutput: logs,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_ResolvesCoreServices(t *testing.T) {
	a := newApp(t, io.Discard)

	if a.Config() == nil || a.Logger() == nil || a.Metrics() == nil || a.Router() == nil || a.Views() == nil {
		t.Fatal("expected every core service to resolve")
	}
	if a.Environment() != "local" {
		t.Errorf("Environment: got %q want local", a.Environment())
	}
	if a.IsProduction() {
		t.Error("IsProduction should be false by default")
	}
}

func TestNew_BadLogFormatFails(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := app.New(app.Options{
		EnvFiles:  []string{filepath.Join(t.TempDir(), "missing.env")},
		LogOutput: io.Discard,
	})
	if err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

// ── Serve ────────────────────────────────────────────────────────────────────

func TestServe_GracefulShutdown(t *testing.T) {
	var logs bytes.Buffer
	a := newApp(t, &logs)
	a.Router().Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		cancel()
		t.Fatalf("GET /ping: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "pong" {
		t.Errorf("body: got %q want pong", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	if !strings.Contains(logs.String(), "server stopped") {
		t.Errorf("expected shutdown log, got %q", logs.String())
	}
}
