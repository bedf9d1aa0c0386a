package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	output "github.com/ArjenSchwarz/go-output/v2"
	"github.com/arjenschwarz/tmpfix/internal/fixture"
)

// readInput returns content from the argument, the --from file, or stdin
func readInput(args []string, from string, stdin io.Reader) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		if from != "" {
			return "", fmt.Errorf("cannot combine a content argument with --from")
		}
		return args[0], nil
	}

	if from != "" {
		text, err := fixture.ReadFileText(from)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return text, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// outputFormat maps a format name onto a go-output format
func outputFormat(name string) output.Format {
	switch name {
	case "json":
		return output.JSON
	case "markdown":
		return output.Markdown
	default:
		return output.Table
	}
}

// renderDocument writes doc to stdout in the requested format
func renderDocument(doc *output.Document, formatName string) error {
	out := output.NewOutput(
		output.WithFormat(outputFormat(formatName)),
		output.WithWriter(output.NewStdoutWriter()),
	)
	return out.Render(context.Background(), doc)
}

// renderFixture reports a created fixture file
func renderFixture(title, path, formatName string) error {
	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	data := []map[string]any{
		{
			"Path":  path,
			"Name":  filepath.Base(path),
			"Bytes": size,
		},
	}

	doc := output.New().
		Table(title, data, output.WithKeys("Path", "Name", "Bytes")).
		Build()

	return renderDocument(doc, formatName)
}
