package fixture

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// TestProperty_RoundTrip tests that reading a created file returns the content written
func TestProperty_RoundTrip(t *testing.T) {
	h := NewForTest(t)

	rapid.Check(t, func(t *rapid.T) {
		content := rapid.String().Draw(t, "content")

		path, err := h.CreateTempFile(content, "")
		if err != nil {
			t.Fatalf("CreateTempFile() error = %v", err)
		}

		got, err := ReadFileText(path)
		if err != nil {
			t.Fatalf("ReadFileText() error = %v", err)
		}
		if got != content {
			t.Fatalf("content = %q, want %q", got, content)
		}
	})
}

// TestProperty_NamedFile tests that named files end with the name and keep their content
func TestProperty_NamedFile(t *testing.T) {
	h := NewForTest(t)

	rapid.Check(t, func(t *rapid.T) {
		content := rapid.String().Draw(t, "content")
		name := rapid.StringMatching(`[A-Za-z0-9_-]{1,16}(\.[a-z]{1,4})?`).Draw(t, "name")

		path, err := h.CreateTempFile(content, name)
		if err != nil {
			t.Fatalf("CreateTempFile(%q) error = %v", name, err)
		}
		if !strings.HasSuffix(path, "/"+name) {
			t.Fatalf("path %q does not end with /%s", path, name)
		}
		if filepath.Base(path) != name {
			t.Fatalf("base name = %q, want %q", filepath.Base(path), name)
		}

		got, err := ReadFileText(path)
		if err != nil {
			t.Fatalf("ReadFileText() error = %v", err)
		}
		if got != content {
			t.Fatalf("content = %q, want %q", got, content)
		}
	})
}

// TestProperty_TransformModule tests that transform modules hold the literal wrapper
func TestProperty_TransformModule(t *testing.T) {
	h := NewForTest(t)

	rapid.Check(t, func(t *rapid.T) {
		body := rapid.String().Draw(t, "body")

		path, err := h.CreateTransformModule(body, "")
		if err != nil {
			t.Fatalf("CreateTransformModule() error = %v", err)
		}

		got, err := ReadFileText(path)
		if err != nil {
			t.Fatalf("ReadFileText() error = %v", err)
		}
		want := "module.exports = function(fileInfo, api, options) { " + body + " }"
		if got != want {
			t.Fatalf("content = %q, want %q", got, want)
		}
	})
}

// TestProperty_UniquePaths tests that identical content never reuses a path
func TestProperty_UniquePaths(t *testing.T) {
	h := NewForTest(t)

	rapid.Check(t, func(t *rapid.T) {
		content := rapid.String().Draw(t, "content")
		count := rapid.IntRange(2, 20).Draw(t, "count")
		named := rapid.Bool().Draw(t, "named")

		filename := ""
		if named {
			filename = "fixture.js"
		}

		seen := make(map[string]bool, count)
		for range count {
			path, err := h.CreateTempFile(content, filename)
			if err != nil {
				t.Fatalf("CreateTempFile() error = %v", err)
			}
			if seen[path] {
				t.Fatalf("duplicate path returned: %s", path)
			}
			seen[path] = true
		}
	})
}

// TestProperty_MissingPathNotFound tests that reading any missing path reports ErrNotFound
func TestProperty_MissingPathNotFound(t *testing.T) {
	dir := t.TempDir()

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`missing-[a-z0-9]{1,12}`).Draw(t, "name")

		_, err := ReadFileText(filepath.Join(dir, name))
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})
}
