package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/repository"
)

// TestAll runs all test cases for ReportStorage
// This is the main entry point for testing any ReportStorage implementation
func TestAll(t *testing.T, store interfaces.ReportStorage) {
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, store)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, store)
	})
	t.Run("GetMissing", func(t *testing.T) {
		TestGetMissing(t, store)
	})
	t.Run("EmptyName", func(t *testing.T) {
		TestEmptyName(t, store)
	})
}

// TestPutAndGet checks that stored artifacts come back byte for byte.
func TestPutAndGet(t *testing.T, store interfaces.ReportStorage) {
	ctx := context.Background()

	name := fmt.Sprintf("report-%s.json", uuid.New().String()[:8])
	payload := []byte(`{"org":"mcp-research","total_repos":3}`)

	gt.NoError(t, store.Put(ctx, name, payload))

	got := gt.R1(store.Get(ctx, name)).NoError(t)
	gt.V(t, string(got)).Equal(string(payload))
}

// TestOverwrite checks that a second Put under the same name replaces
// the artifact.
func TestOverwrite(t *testing.T, store interfaces.ReportStorage) {
	ctx := context.Background()

	name := fmt.Sprintf("report-%s.md", uuid.New().String()[:8])

	gt.NoError(t, store.Put(ctx, name, []byte("first")))
	gt.NoError(t, store.Put(ctx, name, []byte("second")))

	got := gt.R1(store.Get(ctx, name)).NoError(t)
	gt.V(t, string(got)).Equal("second")
}

// TestGetMissing checks the not-found contract.
func TestGetMissing(t *testing.T, store interfaces.ReportStorage) {
	ctx := context.Background()

	_, err := store.Get(ctx, fmt.Sprintf("missing-%s.json", uuid.New().String()[:8]))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestEmptyName checks that an empty artifact name is rejected.
func TestEmptyName(t *testing.T, store interfaces.ReportStorage) {
	ctx := context.Background()

	err := store.Put(ctx, "", []byte("data"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}
