package main

import (
	"os"

	"github.com/mcp-research/mcp-security-scans/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
