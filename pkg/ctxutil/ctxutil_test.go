package ctxutil

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromCtx(ctx); got != "req-1" {
		t.Fatalf("expected %q, got %q", "req-1", got)
	}
}

func TestRequestIDFromCtx_Empty(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRequestID_Overwrite(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "first")
	ctx = WithRequestID(ctx, "second")
	if got := RequestIDFromCtx(ctx); got != "second" {
		t.Fatalf("expected %q, got %q", "second", got)
	}
}
