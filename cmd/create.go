package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [content] [--name name]",
	Short: "Create a temporary file with the given content",
	Long: `Create a temporary file containing the given content and print its path.

Content is taken from the argument, from the file given with --from, or from
stdin when no argument is given or the argument is "-".

With --name the file is placed in a fresh temporary directory under that name,
so the printed path ends in the requested filename.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

var (
	createName string
	createFrom string
)

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "filename for the created file")
	createCmd.Flags().StringVar(&createFrom, "from", "", "read content from this file")
}

func runCreate(cmd *cobra.Command, args []string) error {
	content, err := readInput(args, createFrom, cmd.InOrStdin())
	if err != nil {
		return err
	}

	formatName, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	if dryRun {
		printPreview(createName, content)
		return nil
	}

	helper := resolveHelper(cmd)
	path, err := helper.CreateTempFile(content, createName)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if verbose {
		fmt.Printf("Successfully created file: %s\n", path)
		fmt.Printf("File size: %d bytes\n", len(content))
	}

	return renderFixture("Created File", path, formatName)
}

// printPreview shows what a dry run would write
func printPreview(name, content string) {
	if name == "" {
		fmt.Println("Would create temporary file")
	} else {
		fmt.Printf("Would create temporary file named: %s\n", name)
	}
	fmt.Printf("\nContent preview:\n")
	fmt.Println(content)
}
