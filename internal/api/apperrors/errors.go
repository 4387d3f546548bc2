// Package apperrors defines typed application errors for the API service.
package apperrors

import (
	stderrors "errors"
	"net/http"

	"github.com/louisbranch/bridge-engine/internal/bridge"
	"github.com/louisbranch/bridge-engine/internal/bridge/solver"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
)

// Error is a typed application failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// FromDomain maps engine and solver errors onto typed API errors.
// Rule violations become invalid input, solver failures become
// unavailable, and anything else stays unknown.
func FromDomain(err error) error {
	if err == nil {
		return nil
	}

	var appErr Error
	if stderrors.As(err, &appErr) {
		return err
	}

	var solverErr *solver.Error
	if stderrors.As(err, &solverErr) {
		return Error{Kind: KindUnavailable, Message: err.Error()}
	}

	var illegal bridge.IllegalCallError
	var handSize bridge.InvalidHandSizeError
	var attempts bridge.MaxAttemptsError
	switch {
	case stderrors.As(err, &illegal),
		stderrors.As(err, &handSize),
		stderrors.As(err, &attempts),
		stderrors.Is(err, bridge.ErrAuctionComplete),
		stderrors.Is(err, bridge.ErrIncompleteTrick),
		stderrors.Is(err, bridge.ErrNoBidsInAuction):
		return Error{Kind: KindInvalidInput, Message: err.Error()}
	}

	return Error{Kind: KindUnknown, Message: err.Error()}
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
