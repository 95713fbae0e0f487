package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/mock"
	"github.com/mcp-research/mcp-security-scans/pkg/infra"
	"github.com/mcp-research/mcp-security-scans/pkg/infra/source"
	"github.com/mcp-research/mcp-security-scans/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.Policy()).Equal(nil)
		gt.V(t, clients.ReportStorage()).Equal(nil)
		gt.A(t, clients.Sources()).Length(0)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubClientMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithBigQuery option sets BigQuery client", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{}
		clients := infra.New(infra.WithBigQuery(mockBQ))
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
	})

	t.Run("WithSources keeps provider order", func(t *testing.T) {
		first := source.NewStatic("first", []string{"acme/widget"})
		second := source.NewStatic("second", []string{"acme/gadget"})

		clients := infra.New(infra.WithSources(first), infra.WithSources(second))

		sources := clients.Sources()
		gt.A(t, sources).Length(2)
		gt.V(t, sources[0].Name()).Equal("first")
		gt.V(t, sources[1].Name()).Equal("second")
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubClientMock{}
		mockBQ := &mock.BigQueryMock{}
		store := memory.New()

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithBigQuery(mockBQ),
			infra.WithReportStorage(store),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.ReportStorage()).Equal(store)
	})
}
