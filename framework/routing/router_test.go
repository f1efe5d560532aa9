package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/km-arc/go-signup/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Get(t *testing.T) {
	r := routing.New(nil)
	r.Get("/hello", okHandler)

	rr := do(t, r, http.MethodGet, "/hello")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /hello: got %d want 200", rr.Code)
	}
}

func TestRouter_Post(t *testing.T) {
	r := routing.New(nil)
	r.Post("/register", okHandler)

	rr := do(t, r, http.MethodPost, "/register")
	if rr.Code != http.StatusOK {
		t.Errorf("POST /register: got %d want 200", rr.Code)
	}

	rr = do(t, r, http.MethodGet, "/register")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /register: got %d want 405", rr.Code)
	}
}

func TestRouter_Handle(t *testing.T) {
	r := routing.New(nil)
	r.Handle("/metrics", http.HandlerFunc(okHandler))

	for _, method := range []string{"GET", "POST"} {
		rr := do(t, r, method, "/metrics")
		if rr.Code != http.StatusOK {
			t.Errorf("%s /metrics: got %d want 200", method, rr.Code)
		}
	}
}

// ── 404 for unregistered routes ──────────────────────────────────────────────

func TestRouter_NotFound(t *testing.T) {
	r := routing.New(nil)
	rr := do(t, r, http.MethodGet, "/not-registered")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

// ── Prefix / Group ───────────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New(nil)
	r.Prefix("/api", func(api *routing.Router) {
		api.Get("/fields", okHandler)
	})

	rr := do(t, r, http.MethodGet, "/api/fields")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /api/fields: got %d want 200", rr.Code)
	}

	// Root must 404
	rr2 := do(t, r, http.MethodGet, "/fields")
	if rr2.Code != http.StatusNotFound {
		t.Errorf("GET /fields: expected 404, got %d", rr2.Code)
	}
}

func TestRouter_Group_Middleware(t *testing.T) {
	called := false
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	r := routing.New(nil)
	r.Group(func(g *routing.Router) {
		g.Middleware(mw)
		g.Get("/protected", okHandler)
	})

	do(t, r, http.MethodGet, "/protected")
	if !called {
		t.Error("expected middleware to be called")
	}
}

// ── Recovery ─────────────────────────────────────────────────────────────────

func TestRouter_RecoversPanics(t *testing.T) {
	r := routing.New(nil)
	r.Get("/boom", func(w http.ResponseWriter, req *http.Request) { panic("boom") })

	rr := do(t, r, http.MethodGet, "/boom")
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("got %d want 500", rr.Code)
	}
}

// ── Access log ───────────────────────────────────────────────────────────────

func TestRouter_AccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := routing.New(zap.New(core))
	r.Get("/hello", okHandler)

	do(t, r, http.MethodGet, "/hello")

	if logs.Len() != 1 {
		t.Fatalf("log entries: got %d want 1", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["path"] != "/hello" {
		t.Errorf("path: got %v want /hello", fields["path"])
	}
	if fields["status"] != int64(200) {
		t.Errorf("status: got %v (%T) want 200", fields["status"], fields["status"])
	}
	if fields["request_id"] == "" {
		t.Error("request_id should be set")
	}
}

// ── Handler() returns http.Handler ───────────────────────────────────────────

func TestRouter_HandlerInterface(t *testing.T) {
	r := routing.New(nil)
	r.Get("/ping", okHandler)
	var _ http.Handler = r.Handler()
}
