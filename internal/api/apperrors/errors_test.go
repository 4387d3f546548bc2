package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/louisbranch/bridge-engine/internal/bridge"
	"github.com/louisbranch/bridge-engine/internal/bridge/solver"
)

func TestErrorMessage(t *testing.T) {
	err := E(KindInvalidInput, "bad payload")
	if err.Error() != "bad payload" {
		t.Fatalf("expected message, got %q", err.Error())
	}

	empty := Error{Kind: KindNotFound}
	if empty.Error() != "not_found" {
		t.Fatalf("expected kind fallback, got %q", empty.Error())
	}
}

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"illegal call", bridge.IllegalCallError{Call: bridge.Double}, KindInvalidInput},
		{"hand size", bridge.InvalidHandSizeError{Count: 5}, KindInvalidInput},
		{"attempt budget", bridge.MaxAttemptsError{Attempts: 100}, KindInvalidInput},
		{"auction complete", bridge.ErrAuctionComplete, KindInvalidInput},
		{"incomplete trick", bridge.ErrIncompleteTrick, KindInvalidInput},
		{"no bids", bridge.ErrNoBidsInAuction, KindInvalidInput},
		{"wrapped domain error", fmt.Errorf("add call: %w", bridge.ErrAuctionComplete), KindInvalidInput},
		{"solver failure", &solver.Error{Err: errors.New("connection refused")}, KindUnavailable},
		{"unknown", errors.New("boom"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := FromDomain(tt.err)
			var appErr Error
			if !errors.As(mapped, &appErr) {
				t.Fatalf("expected Error, got %v", mapped)
			}
			if appErr.Kind != tt.kind {
				t.Fatalf("expected kind %s, got %s", tt.kind, appErr.Kind)
			}
		})
	}

	if FromDomain(nil) != nil {
		t.Fatalf("expected nil passthrough")
	}

	typed := E(KindNotFound, "missing")
	if FromDomain(typed) != typed {
		t.Fatalf("expected typed error passthrough")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid input", E(KindInvalidInput, "bad"), http.StatusBadRequest},
		{"not found", E(KindNotFound, "missing"), http.StatusNotFound},
		{"unavailable", E(KindUnavailable, "down"), http.StatusServiceUnavailable},
		{"unknown kind", E(KindUnknown, "boom"), http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
