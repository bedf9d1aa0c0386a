package cmd

import (
	"errors"
	"fmt"

	output "github.com/ArjenSchwarz/go-output/v2"
	"github.com/arjenschwarz/tmpfix/internal/fixture"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Print the contents of a file",
	Long: `Print the full contents of a file as text.

In table and markdown format the text is printed as is. In json format the
path and content are rendered as a single record.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	path := args[0]

	formatName, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	text, err := fixture.ReadFileText(path)
	if err != nil {
		if errors.Is(err, fixture.ErrNotFound) {
			return fmt.Errorf("file not found: %s", path)
		}
		return fmt.Errorf("failed to read file: %w", err)
	}

	if verbose {
		fmt.Printf("Read %d bytes from %s\n", len(text), path)
	}

	if formatName != "json" {
		fmt.Print(text)
		return nil
	}

	doc := output.New().
		Table("File", []map[string]any{{"Path": path, "Content": text}}, output.WithKeys("Path", "Content")).
		Build()
	return renderDocument(doc, formatName)
}
