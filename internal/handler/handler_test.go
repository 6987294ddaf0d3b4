package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandler_NotFound(t *testing.T) {
	h := New(nil)

	req := httptest.NewRequest(http.MethodPost, "/nonexistent", nil)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "resource not found" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}

func TestHandler_NotFound_FallsThroughForReads(t *testing.T) {
	spa := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "index")
	})
	h := New(spa)

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		req := httptest.NewRequest(method, "/anything", nil)
		rec := httptest.NewRecorder()

		h.NotFound(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", method, rec.Code)
		}
		if rec.Body.String() != "index" {
			t.Errorf("%s: expected spa body, got %q", method, rec.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodPut, "/anything", nil)
	rec := httptest.NewRecorder()
	h.NotFound(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("PUT: expected status 404, got %d", rec.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := New(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects", nil)
	rec := httptest.NewRecorder()

	h.MethodNotAllowed(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "method not allowed" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
	}{
		{"object", `{"name":"Ada"}`, true, http.StatusOK},
		{"empty body", ``, true, http.StatusOK},
		{"not json", `name=Ada`, false, http.StatusInternalServerError},
		{"truncated", `{"name":`, false, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var dst map[string]any
			ok := decodeBody(rec, req, discardLogger(), &dst)
			if ok != tt.wantOK {
				t.Fatalf("decodeBody() = %v, want %v", ok, tt.wantOK)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if !ok {
				var response map[string]string
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if response["error"] == "" {
					t.Error("expected non-empty error")
				}
			}
		})
	}
}

func TestDecodeBody_TooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(`{"message":"`+strings.Repeat("a", 64)+`"}`))
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	var dst map[string]any
	if decodeBody(rec, req, discardLogger(), &dst) {
		t.Fatal("expected decode to fail")
	}
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", rec.Code)
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, map[string]string{"ok": "yes"})

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"ok":"yes"}` {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestWriteJSON_UnencodableValueKeepsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}
