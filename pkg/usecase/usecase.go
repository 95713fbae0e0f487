package usecase

import (
	"time"

	"github.com/mcp-research/mcp-security-scans/pkg/infra"
)

// Fallbacks for runs whose input leaves the knob unset.
const (
	defaultScanWindow = 7 * 24 * time.Hour
	defaultWorkers    = 4
)

type UseCase struct {
	clients *infra.Clients
}

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}
