package ghclient_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/gt"

	"github.com/mcp-research/mcp-security-scans/pkg/infra/ghclient"
)

func rateResponse(limit, remaining int, reset time.Time) *github.Response {
	return &github.Response{
		Rate: github.Rate{
			Limit:     limit,
			Remaining: remaining,
			Reset:     github.Timestamp{Time: reset},
		},
	}
}

func TestRateGatePassesWhenBudgetIsHealthy(t *testing.T) {
	gate := ghclient.NewRateGate(1000, 10, 50)
	gate.Observe(rateResponse(5000, 4900, time.Now().Add(time.Hour)))

	gt.False(t, gate.Paused())

	start := time.Now()
	gt.NoError(t, gate.Wait(context.Background()))
	gt.True(t, time.Since(start) < 100*time.Millisecond)

	remaining, limit, _ := gate.Budget()
	gt.V(t, remaining).Equal(4900)
	gt.V(t, limit).Equal(5000)
}

func TestRateGatePausesOnLowRemaining(t *testing.T) {
	gate := ghclient.NewRateGate(1000, 10, 50)
	reset := time.Now().Add(80 * time.Millisecond)
	gate.Observe(rateResponse(5000, 10, reset))

	gt.True(t, gate.Paused())

	start := time.Now()
	gt.NoError(t, gate.Wait(context.Background()))
	gt.True(t, time.Since(start) >= 50*time.Millisecond)
	gt.False(t, gate.Paused())
}

func TestRateGateIgnoresEmptyObservations(t *testing.T) {
	gate := ghclient.NewRateGate(1000, 10, 50)

	gate.Observe(nil)
	gate.Observe(&github.Response{})

	gt.False(t, gate.Paused())
	remaining, limit, _ := gate.Budget()
	gt.V(t, remaining).Equal(0)
	gt.V(t, limit).Equal(0)
}

func TestRateGateExplicitPause(t *testing.T) {
	gate := ghclient.NewRateGate(1000, 10, 50)
	gate.PauseUntil(time.Now().Add(80 * time.Millisecond))

	// A later call must not shorten the pause.
	gate.PauseUntil(time.Now().Add(10 * time.Millisecond))

	start := time.Now()
	gt.NoError(t, gate.Wait(context.Background()))
	gt.True(t, time.Since(start) >= 50*time.Millisecond)
}

func TestRateGateWaitHonorsContext(t *testing.T) {
	gate := ghclient.NewRateGate(1000, 10, 50)
	gate.PauseUntil(time.Now().Add(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	gt.Error(t, gate.Wait(ctx))
}
