package ghclient

import (
	"context"
	"sync"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSec = 2.0
	defaultBurst          = 5
	defaultRemainingFloor = 50
)

// RateGate is the shared API budget guard. Every request acquires a token
// from the limiter, and the rate headers of every response feed back into
// the gate. When the remaining budget drops below the floor, or the API
// answers with an explicit rate limit error, all callers pause until the
// reported reset time.
type RateGate struct {
	limiter *rate.Limiter
	floor   int

	mu          sync.RWMutex
	pausedUntil time.Time
	remaining   int
	limit       int
	reset       time.Time
}

// NewRateGate builds a gate that smooths requests to rps with the given
// burst, and pauses when the observed remaining budget is at or below
// floor.
func NewRateGate(rps float64, burst, floor int) *RateGate {
	return &RateGate{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		floor:   floor,
	}
}

func defaultRateGate() *RateGate {
	return NewRateGate(defaultRequestsPerSec, defaultBurst, defaultRemainingFloor)
}

// Wait blocks until the caller may issue a request. An active pause is
// honored before a limiter token is taken, so a pause installed by any
// worker stalls all of them.
func (x *RateGate) Wait(ctx context.Context) error {
	for {
		x.mu.RLock()
		until := x.pausedUntil
		x.mu.RUnlock()

		now := time.Now()
		if !until.After(now) {
			break
		}

		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "canceled while paused for rate limit reset")
		case <-time.After(until.Sub(now)):
			// Re-check: the pause may have been extended meanwhile.
		}
	}

	if err := x.limiter.Wait(ctx); err != nil {
		return goerr.Wrap(err, "canceled while waiting for request budget")
	}
	return nil
}

// Observe records the rate headers of a response. A remaining budget at
// or below the floor pauses the gate until the advertised reset.
func (x *RateGate) Observe(resp *github.Response) {
	if resp == nil || resp.Rate.Limit == 0 {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.remaining = resp.Rate.Remaining
	x.limit = resp.Rate.Limit
	x.reset = resp.Rate.Reset.Time

	if resp.Rate.Remaining <= x.floor && resp.Rate.Reset.Time.After(x.pausedUntil) {
		x.pausedUntil = resp.Rate.Reset.Time
	}
}

// PauseUntil installs an explicit pause, e.g. from a RateLimitError reset
// or an abuse Retry-After. A pause never shortens an existing one.
func (x *RateGate) PauseUntil(t time.Time) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if t.After(x.pausedUntil) {
		x.pausedUntil = t
	}
}

// Paused reports whether the gate currently holds back requests.
func (x *RateGate) Paused() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.pausedUntil.After(time.Now())
}

// Budget returns the most recently observed rate snapshot.
func (x *RateGate) Budget() (remaining, limit int, reset time.Time) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.remaining, x.limit, x.reset
}
