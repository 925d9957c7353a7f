package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serveWithID(t *testing.T, clientID string) (ctxID, headerID string) {
	t.Helper()
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/vuln-scan", nil)
	if clientID != "" {
		req.Header.Set(RequestIDHeader, clientID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		keepsID  bool
	}{
		{name: "generated when absent", clientID: "", keepsID: false},
		{name: "client token reused", clientID: "client-request-123", keepsID: true},
		{name: "uuid reused", clientID: "0f8fad5b-d9cb-469f-a165-70867728950e", keepsID: true},
		{name: "header injection replaced", clientID: "abc\r\nSet-Cookie: x=1", keepsID: false},
		{name: "spaces replaced", clientID: "two words", keepsID: false},
		{name: "overlong replaced", clientID: strings.Repeat("a", 65), keepsID: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctxID, headerID := serveWithID(t, tt.clientID)

			if ctxID == "" || ctxID != headerID {
				t.Fatalf("context id %q and header id %q must match and be set", ctxID, headerID)
			}
			if tt.keepsID && ctxID != tt.clientID {
				t.Errorf("expected client id %q to be kept, got %q", tt.clientID, ctxID)
			}
			if !tt.keepsID && len(ctxID) != 16 {
				t.Errorf("expected a generated 16-character id, got %q", ctxID)
			}
		})
	}
}

func TestRequestIDUnique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, _ := serveWithID(t, "")
		ids[id] = true
	}
	if len(ids) != 100 {
		t.Errorf("expected 100 unique IDs, got %d", len(ids))
	}
}

func TestNewRequestIDIsHex(t *testing.T) {
	id := NewRequestID()
	if len(id) != 16 {
		t.Fatalf("expected length 16, got %d", len(id))
	}
	for _, c := range id {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("expected hex character, got %c", c)
		}
	}
}

func TestWithAndGetRequestID(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	ctx := WithRequestID(context.Background(), "run-1")
	if got := GetRequestID(ctx); got != "run-1" {
		t.Errorf("expected run-1, got %q", got)
	}
}
