package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/repository"
)

// New creates a report storage backed by a local directory. The
// directory is created if it does not exist.
func New(dir string) (interfaces.ReportStorage, error) {
	if dir == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "report directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create report directory", goerr.V("dir", dir))
	}

	return &reportStorage{dir: dir}, nil
}

type reportStorage struct {
	dir string
}

func (r *reportStorage) Put(ctx context.Context, name string, data []byte) error {
	path, err := r.resolve(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return goerr.Wrap(err, "failed to create artifact directory", goerr.V("path", path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write artifact", goerr.V("path", path))
	}

	return nil
}

func (r *reportStorage) Get(ctx context.Context, name string) ([]byte, error) {
	path, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "artifact not found",
				goerr.V("name", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to read artifact", goerr.V("path", path))
	}

	return data, nil
}

// resolve maps an artifact name onto a path inside the storage
// directory and rejects names that would escape it.
func (r *reportStorage) resolve(name string) (string, error) {
	if name == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "artifact name is empty")
	}

	cleaned := filepath.Clean(name)
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", goerr.Wrap(repository.ErrInvalidInput, "artifact name escapes storage directory",
			goerr.V("name", name),
		)
	}

	return filepath.Join(r.dir, cleaned), nil
}
