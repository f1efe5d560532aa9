package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"

	"github.com/km-arc/go-signup/framework/validation"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with Laravel-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Created sends 201 JSON: {"data": v}
func (res *Response) Created(v any) {
	res.JSON(http.StatusCreated, envelope{"data": v})
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusBadRequest, "malformed body")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// ValidationError sends 422 with the error bag.
//
//	res.ValidationError(form.VisibleErrors())
func (res *Response) ValidationError(errors *validation.Errors) {
	if errors == nil {
		errors = &validation.Errors{Bag: map[string]*validation.FieldError{}}
	}
	res.JSON(http.StatusUnprocessableEntity, errors)
}

// ── View / Templates ─────────────────────────────────────────────────────────

// ViewEngine renders html/template files from a filesystem, usually an
// embed.FS. Parsed templates are cached by name.
type ViewEngine struct {
	fsys  fs.FS
	ext   string
	mu    sync.Mutex
	cache map[string]*template.Template
}

// NewViewEngine creates a ViewEngine.
// ext is the file extension (e.g. ".html").
func NewViewEngine(fsys fs.FS, ext string) *ViewEngine {
	return &ViewEngine{fsys: fsys, ext: ext, cache: make(map[string]*template.Template)}
}

// View renders a template with status 200.
//
//	engine.View(w, "register", data)
func (ve *ViewEngine) View(w http.ResponseWriter, name string, data any) {
	ve.ViewStatus(w, http.StatusOK, name, data)
}

// ViewStatus renders a template with the given status. Rendering happens
// into a buffer first so a template error never produces half a page.
func (ve *ViewEngine) ViewStatus(w http.ResponseWriter, status int, name string, data any) {
	tmpl, err := ve.lookup(name)
	if err != nil {
		http.Error(w, "Template not found: "+name, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		http.Error(w, "Template render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (ve *ViewEngine) lookup(name string) (*template.Template, error) {
	ve.mu.Lock()
	defer ve.mu.Unlock()
	if tmpl, ok := ve.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := template.ParseFS(ve.fsys, name+ve.ext)
	if err != nil {
		return nil, fmt.Errorf("http: view %q: %w", name, err)
	}
	ve.cache[name] = tmpl
	return tmpl, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any
