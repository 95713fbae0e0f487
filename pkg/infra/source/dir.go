// Package source provides repository discovery providers. Each provider
// yields discovery documents in deterministic order, and the pipeline
// composes providers in an explicit ordered list.
package source

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// Dir reads discovery documents from *.json files in a local directory.
type Dir struct {
	dir string
}

var _ interfaces.RepoSource = (*Dir)(nil)

func NewDir(dir string) *Dir {
	return &Dir{dir: dir}
}

func (x *Dir) Name() string {
	return "dir:" + x.dir
}

func (x *Dir) Configs(ctx context.Context) ([]*model.RepoConfig, error) {
	return loadConfigDir(ctx, x.dir)
}

// loadConfigDir reads every *.json document of dir in lexical order.
// Malformed documents are skipped with a warning so one bad file does
// not block discovery.
func loadConfigDir(ctx context.Context, dir string) ([]*model.RepoConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config directory", goerr.V("dir", dir))
	}

	logger := logging.From(ctx)
	var configs []*model.RepoConfig

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable config document", "path", path, "error", err)
			continue
		}

		var cfg model.RepoConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			logger.Warn("skipping malformed config document", "path", path, "error", err)
			continue
		}

		cfg.Origin = path
		configs = append(configs, &cfg)
	}

	return configs, nil
}
