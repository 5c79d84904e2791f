package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/pkg/ctxutil"
)

func serveRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	RequestID(handler).ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_ReuseIncoming(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveRequestID(t, "trace-abc-123")
	if ctxID != "trace-abc-123" || headerID != "trace-abc-123" {
		t.Errorf("ctx = %q, header = %q, want both %q", ctxID, headerID, "trace-abc-123")
	}
}

func TestRequestID_GenerateNew(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveRequestID(t, "")
	if ctxID != headerID {
		t.Errorf("ctx = %q, header = %q, want equal", ctxID, headerID)
	}
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("expected generated UUID, got %q: %v", ctxID, err)
	}
}

func TestRequestID_ReplacesOversized(t *testing.T) {
	t.Parallel()

	ctxID, _ := serveRequestID(t, strings.Repeat("x", maxRequestIDLen+1))
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("expected oversized id to be replaced, got %q", ctxID)
	}
}
