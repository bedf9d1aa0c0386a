package cmd

import (
	"fmt"

	"github.com/arjenschwarz/tmpfix/internal/fixture"
	"github.com/spf13/cobra"
)

var transformCmd = &cobra.Command{
	Use:   "transform [body] [--name name]",
	Short: "Create a transform module wrapping the given code",
	Long: `Create a temporary transform module and print its path.

The module has the form:

  module.exports = function(fileInfo, api, options) { <body> }

The body is inserted as is, without escaping. It is taken from the argument,
from the file given with --from, or from stdin when no argument is given or the
argument is "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

var (
	transformName string
	transformFrom string
)

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().StringVarP(&transformName, "name", "n", "", "filename for the transform module")
	transformCmd.Flags().StringVar(&transformFrom, "from", "", "read the body from this file")
}

func runTransform(cmd *cobra.Command, args []string) error {
	body, err := readInput(args, transformFrom, cmd.InOrStdin())
	if err != nil {
		return err
	}

	formatName, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	if dryRun {
		printPreview(transformName, fixture.TransformSource(body))
		return nil
	}

	helper := resolveHelper(cmd)
	path, err := helper.CreateTransformModule(body, transformName)
	if err != nil {
		return fmt.Errorf("failed to create transform module: %w", err)
	}

	if verbose {
		fmt.Printf("Successfully created transform module: %s\n", path)
	}

	return renderFixture("Transform Module", path, formatName)
}
