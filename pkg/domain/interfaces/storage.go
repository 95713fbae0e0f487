package interfaces

import "context"

// ReportStorage persists report artifacts. Implementations exist for a
// local directory, a GCS bucket and an in-memory store for tests.
type ReportStorage interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
}
