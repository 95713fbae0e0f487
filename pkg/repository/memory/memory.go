package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/repository"
)

// New creates a new in-memory report storage
func New() interfaces.ReportStorage {
	return &reportStorage{
		files: make(map[string][]byte),
	}
}

type reportStorage struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func (r *reportStorage) Put(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "artifact name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	r.files[name] = stored

	return nil
}

func (r *reportStorage) Get(ctx context.Context, name string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.files[name]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "artifact not found",
			goerr.V("name", name),
		)
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
