package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command all subcommands attach to
var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Catalog service command line interface",
	Long: `catalogctl manages the catalog service.

It runs the HTTP server, waits for readiness, loads item manifests and
inspects the effective configuration.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
