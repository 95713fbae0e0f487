package ghclient

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

// maxAttempts bounds one logical API operation: the first call plus
// retries with exponential backoff and jitter.
const maxAttempts = 5

func retryPolicy(ctx context.Context) backoff.BackOffContext {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.RandomizationFactor = 0.5
	policy.Multiplier = 2.0
	policy.MaxInterval = 30 * time.Second
	// Bounded by attempt count, not wall clock.
	policy.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(policy, maxAttempts-1), ctx)
}

// isPermanent reports whether a classified error must not be retried:
// the API has given a definitive answer that repeating the request
// cannot change.
func isPermanent(err error) bool {
	return errors.Is(err, types.ErrNotFound) ||
		errors.Is(err, types.ErrAlreadyExists) ||
		errors.Is(err, types.ErrConflict) ||
		errors.Is(err, types.ErrValidation) ||
		errors.Is(err, types.ErrUnsupported)
}
