// Package common defines shared constants and sentinel errors used across
// stash components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Outcome errors returned by services. The transport layer maps each
	// one to a fixed status code and never inspects anything finer.
	ErrorValidation   = errors.New("validation error")
	ErrorConflict     = errors.New("already exists")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorUnavailable  = errors.New("dependency unavailable")
	ErrorInternal     = errors.New("internal error")

	// Authentication failure reasons. Services attach one of these to
	// ErrorUnauthorized, so the external outcome stays uniform while logs
	// and tests can still tell the stages apart.
	ErrAuthHeaderMissing = errors.New("missing authorization header")
	ErrAuthSchemeInvalid = errors.New("invalid authorization scheme")
	ErrTokenMalformed    = errors.New("malformed token")
	ErrTokenSignature    = errors.New("invalid token signature")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenNoSubject    = errors.New("token has no subject")
	ErrAccountGone       = errors.New("account no longer exists")
)
