package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	format  string
	dryRun  bool
	root    string

	// Version information
	version = "0.1.0-dev"

	rootCmd = &cobra.Command{
		Use:   "tmpfix",
		Short: "Create temporary fixture files for codemod tests",
		Long: `Tmpfix creates temporary files for testing code transformation tools.

This tool provides:
- Fixture files with arbitrary content, optionally under a chosen filename
- Transform modules wrapping a code body in function(fileInfo, api, options)
- Reading fixture contents back as text
- Multiple output formats

Files are left on disk; removing them is up to the caller.`,
		Version:      version,
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "output format (table, markdown, json)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "preview content without creating files")
	rootCmd.PersistentFlags().StringVar(&root, "root", "", "directory to create fixtures in (default: system temp directory)")

	rootCmd.SetVersionTemplate("tmpfix version {{.Version}}\n")
}
