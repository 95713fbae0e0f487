package gcs

import (
	"context"
	"errors"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/repository"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/safe"
)

type reportStorage struct {
	client *storage.Client
	bucket string
	prefix string
}

type Option func(*reportStorage)

// WithPrefix stores artifacts under the given object name prefix.
func WithPrefix(prefix string) Option {
	return func(r *reportStorage) {
		r.prefix = prefix
	}
}

// New creates a report storage backed by a GCS bucket.
func New(ctx context.Context, bucket string, options ...Option) (interfaces.ReportStorage, error) {
	if bucket == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "bucket name is empty")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GCS client", goerr.V("bucket", bucket))
	}

	store := &reportStorage{
		client: client,
		bucket: bucket,
	}
	for _, opt := range options {
		opt(store)
	}
	return store, nil
}

func (r *reportStorage) objectName(name string) string {
	if r.prefix == "" {
		return name
	}
	return path.Join(r.prefix, name)
}

func (r *reportStorage) Put(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "artifact name is empty")
	}

	obj := r.client.Bucket(r.bucket).Object(r.objectName(name))
	w := obj.NewWriter(ctx)

	if _, err := w.Write(data); err != nil {
		safe.Close(w)
		return goerr.Wrap(err, "failed to write artifact",
			goerr.V("bucket", r.bucket), goerr.V("object", r.objectName(name)))
	}
	// Close commits the object; an upload error surfaces here.
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to commit artifact",
			goerr.V("bucket", r.bucket), goerr.V("object", r.objectName(name)))
	}

	return nil
}

func (r *reportStorage) Get(ctx context.Context, name string) ([]byte, error) {
	obj := r.client.Bucket(r.bucket).Object(r.objectName(name))

	rd, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(repository.ErrNotFound, "artifact not found",
				goerr.V("name", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to open artifact",
			goerr.V("bucket", r.bucket), goerr.V("object", r.objectName(name)))
	}
	defer safe.Close(rd)

	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read artifact",
			goerr.V("bucket", r.bucket), goerr.V("object", r.objectName(name)))
	}

	return data, nil
}
