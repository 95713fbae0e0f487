package cli_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mcp-research/mcp-security-scans/pkg/cli"
)

func TestRunConfiguresLogging(t *testing.T) {
	var gotFormat, gotLevel, gotOutput string
	orig := cli.ConfigureLogging
	cli.ConfigureLogging = func(format, level, output string) error {
		gotFormat, gotLevel, gotOutput = format, level, output
		return nil
	}
	defer func() { cli.ConfigureLogging = orig }()

	err := cli.New().Run([]string{"mcp-security-scans", "--log-level", "warn", "--log-format", "json"})
	gt.NoError(t, err)

	gt.V(t, gotFormat).Equal("json")
	gt.V(t, gotLevel).Equal("warn")
	gt.V(t, gotOutput).Equal("-")
}

func TestRunRejectsInvalidLogLevel(t *testing.T) {
	err := cli.New().Run([]string{"mcp-security-scans", "--log-level", "loud"})
	gt.Error(t, err)
}
