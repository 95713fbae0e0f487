package types

import "github.com/m-mizutani/goerr/v2"

// Error taxonomy for GitHub API failures. The infra layer classifies every
// API error into exactly one of these; usecases branch with errors.Is and
// never look at HTTP status codes.
var (
	// ErrNotFound: the resource does not exist (404).
	ErrNotFound = goerr.New("not found")

	// ErrAlreadyExists: the resource is already present. Treated as success
	// by idempotent operations (fork ensure, schema upsert).
	ErrAlreadyExists = goerr.New("already exists")

	// ErrRateLimited: the shared API budget is exhausted. Retryable after
	// the reset time.
	ErrRateLimited = goerr.New("rate limited")

	// ErrTransient: network failures and 5xx answers. Retryable with
	// backoff.
	ErrTransient = goerr.New("transient failure")

	// ErrUnsupported: the repository cannot use the requested feature
	// (e.g. code scanning default setup on an uncovered language).
	ErrUnsupported = goerr.New("not supported")

	// ErrValidation: input rejected before or by the API (422).
	ErrValidation = goerr.New("validation failed")

	// ErrConflict: the resource exists but in an incompatible state, such
	// as a non-fork repository occupying a fork's name. Never retried,
	// never overwritten.
	ErrConflict = goerr.New("conflicting state")
)

var (
	ErrInvalidOption = goerr.New("invalid option")
)
