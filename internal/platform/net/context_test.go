package net

import (
	"context"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("empty ctx request id = %q", got)
	}

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Fatalf("RequestID = %q", got)
	}
	if got := chimw.GetReqID(ctx); got != "req-1" {
		t.Fatalf("chi did not see the id: %q", got)
	}

	if WithRequestID(ctx, "") != ctx {
		t.Fatalf("blank id should leave ctx untouched")
	}
}

func TestRequestID_FromChi(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "chi-7")
	if got := RequestID(ctx); got != "chi-7" {
		t.Fatalf("RequestID = %q", got)
	}
}
