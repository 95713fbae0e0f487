package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// EnsureSchema reconciles the org custom property schema with the
// property catalog. Definitions are validated before any network call,
// and only missing properties are created; a concurrent creation
// surfacing as already-exists counts as success.
func (x *UseCase) EnsureSchema(ctx context.Context, org types.OrgName) error {
	catalog := model.PropertyCatalog()
	for _, def := range catalog {
		if err := def.Validate(); err != nil {
			return err
		}
	}

	gh := x.clients.GitHub()
	existing, err := gh.ListOrgProperties(ctx, org)
	if err != nil {
		return goerr.Wrap(err, "failed to list org custom properties", goerr.V("org", org))
	}

	known := make(map[types.PropertyName]struct{}, len(existing))
	for _, name := range existing {
		known[name] = struct{}{}
	}

	logger := logging.From(ctx)
	created := 0
	for _, def := range catalog {
		if _, ok := known[def.Name]; ok {
			continue
		}

		if err := gh.UpsertOrgProperty(ctx, org, def); err != nil {
			if errors.Is(err, types.ErrAlreadyExists) {
				logger.Debug("org property already present", "property", def.Name)
				continue
			}
			return goerr.Wrap(err, "failed to create org custom property",
				goerr.V("org", org), goerr.V("property", def.Name))
		}
		created++
	}

	if created > 0 {
		logger.Info("created org custom properties", "org", org, "created", created)
	}
	return nil
}
