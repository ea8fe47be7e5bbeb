package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	payload := map[string]string{"ok": "true"}

	writeJSON(rec, http.StatusCreated, payload)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %q", ct)
	}

	var decoded map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if decoded["ok"] != "true" {
		t.Fatalf("unexpected payload: %#v", decoded)
	}
}

func TestWriteResult(t *testing.T) {
	rec := httptest.NewRecorder()

	writeResult(rec, map[string]bool{"success": true})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body := rec.Body.String(); body != "{\"result\":{\"success\":true}}\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, http.StatusBadRequest, statusInvalidArgument, "bad input")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Error.Status != statusInvalidArgument || resp.Error.Message != "bad input" {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
}

func TestHTTPStatusFor(t *testing.T) {
	if status, code := httpStatusFor("internal"); status != statusInternal || code != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping for internal: %s %d", status, code)
	}
	if status, code := httpStatusFor("invalid-argument"); status != statusInvalidArgument || code != http.StatusBadRequest {
		t.Fatalf("unexpected mapping for invalid-argument: %s %d", status, code)
	}
	if status, _ := httpStatusFor("something-else"); status != statusInternal {
		t.Fatalf("expected unknown codes to map to INTERNAL, got %s", status)
	}
}
