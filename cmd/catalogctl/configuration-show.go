package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"catalog-in-go/pkg/config"
)

// configurationShowCmd represents the configuration show command
var configurationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective catalog configuration and value sources",
	Long: `Show the effective catalog configuration.

Each attribute is printed with the source it was resolved from (default,
file or environment). Values reflect the current state of the config file
and environment, which may differ from what a running server loaded at
startup. The store password is always redacted.

Config file location: /etc/catalog/config/catalog.yml (or CATALOG_CONFIG_PATH)

Example:
  $ catalogctl configuration show
  NAME                 VALUE                          SOURCE
  ----                 -----                          ------
  bind_address         0.0.0.0                        default
  port                 8080                           default
  store_host           mongo.internal                 environment
  ...

  $ catalogctl configuration show --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := showConfiguration(os.Stdout, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationShowCmd)
	configurationShowCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showConfiguration(w io.Writer, output string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	switch output {
	case "json":
		jsonOutput, err := cfg.FormatJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, jsonOutput)
		return err
	case "text":
		_, err = fmt.Fprint(w, cfg.FormatText())
		return err
	default:
		return fmt.Errorf("unknown output format %q (expected text or json)", output)
	}
}
