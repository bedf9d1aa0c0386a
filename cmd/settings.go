package cmd

import (
	"fmt"
	"slices"

	"github.com/arjenschwarz/tmpfix/internal/config"
	"github.com/arjenschwarz/tmpfix/internal/fixture"
	"github.com/spf13/cobra"
)

// loadSettings returns the configuration, falling back to defaults when it cannot be loaded
func loadSettings() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil || cfg == nil {
		if verbose {
			fmt.Printf("Warning: failed to load config: %v\n", err)
		}
		return &config.Config{
			Temp:   config.TempSettings{Prefix: config.DefaultPrefix},
			Output: config.OutputSettings{Format: config.DefaultFormat},
		}
	}
	return cfg
}

// resolveHelper builds a fixture helper from the --root flag or the configured root
func resolveHelper(cmd *cobra.Command) *fixture.Helper {
	cfg := loadSettings()

	dir := cfg.Temp.Root
	if cmd.Flags().Changed("root") {
		dir = root
	}

	if verbose {
		if dir == "" {
			fmt.Println("Using system temp directory")
		} else {
			fmt.Printf("Using fixture root: %s\n", dir)
		}
	}

	return fixture.New(fixture.WithRoot(dir), fixture.WithPrefix(cfg.Temp.Prefix))
}

// resolveFormat returns the --format flag or the configured output format
func resolveFormat(cmd *cobra.Command) (string, error) {
	f := format
	if !cmd.Flags().Changed("format") {
		f = loadSettings().Output.Format
	}
	if !slices.Contains(config.Formats, f) {
		return "", fmt.Errorf("unsupported format %q (want table, markdown or json)", f)
	}
	return f, nil
}
