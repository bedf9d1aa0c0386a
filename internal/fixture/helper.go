package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// DefaultPrefix is the name prefix used for created files and directories
const DefaultPrefix = "tmpfix-"

// Helper creates temporary fixture files.
// The zero value is not usable, construct one with New or NewForTest.
type Helper struct {
	root    string
	prefix  string
	cleanup bool

	mu      sync.Mutex
	created []string
}

// Option configures a Helper
type Option func(*Helper)

// WithRoot sets the directory new entries are created in.
// An empty root selects the host temp area.
func WithRoot(dir string) Option {
	return func(h *Helper) {
		h.root = dir
	}
}

// WithPrefix sets the name prefix for created entries
func WithPrefix(prefix string) Option {
	return func(h *Helper) {
		h.prefix = prefix
	}
}

// WithCleanup enables recording of created entries so Cleanup can remove them
func WithCleanup(enabled bool) Option {
	return func(h *Helper) {
		h.cleanup = enabled
	}
}

// New returns a Helper configured by opts
func New(opts ...Option) *Helper {
	h := &Helper{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Root returns the configured root directory, empty for the host temp area
func (h *Helper) Root() string {
	return h.root
}

// CreateTempFile writes content to a new temporary file and returns its absolute path.
// When filename is set the file is moved into a fresh temporary directory so that the
// returned path ends in filename.
func (h *Helper) CreateTempFile(content, filename string) (string, error) {
	if filename != "" {
		if err := validateFilename(filename); err != nil {
			return "", err
		}
	}

	root, err := h.resolveRoot()
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp(root, h.prefix+"*")
	if err != nil {
		return "", &IOError{Op: "create", Path: root, Err: err}
	}
	filePath := f.Name()
	h.track(filePath)

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", &IOError{Op: "write", Path: filePath, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &IOError{Op: "close", Path: filePath, Err: err}
	}

	if filename == "" {
		return filePath, nil
	}

	dir, err := os.MkdirTemp(root, h.prefix+"*")
	if err != nil {
		return "", &IOError{Op: "mkdir", Path: root, Err: err}
	}
	h.track(dir)

	newPath := filepath.Join(dir, filename)
	if err := os.Rename(filePath, newPath); err != nil {
		return "", &IOError{Op: "rename", Path: newPath, Err: err}
	}
	return newPath, nil
}

// CreateTransformModule writes a transform module wrapping body and returns its path
func (h *Helper) CreateTransformModule(body, filename string) (string, error) {
	return h.CreateTempFile(TransformSource(body), filename)
}

// Created returns the entries recorded for cleanup, oldest first
func (h *Helper) Created() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.created)
}

// Cleanup removes every recorded entry, newest first.
// Entries that are already gone are skipped.
func (h *Helper) Cleanup() error {
	h.mu.Lock()
	created := h.created
	h.created = nil
	h.mu.Unlock()

	var errs []error
	for _, path := range slices.Backward(created) {
		if err := os.RemoveAll(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("removing %s: %w", path, err))
		}
	}
	return errors.Join(errs...)
}

// ReadFileText returns the full contents of path as text
func ReadFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

func (h *Helper) track(path string) {
	if !h.cleanup {
		return
	}
	h.mu.Lock()
	h.created = append(h.created, path)
	h.mu.Unlock()
}

// resolveRoot makes the root absolute so returned paths are absolute as well
func (h *Helper) resolveRoot() (string, error) {
	root := h.root
	if root == "" {
		root = os.TempDir()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &IOError{Op: "abs", Path: root, Err: err}
	}
	return abs, nil
}

func validateFilename(name string) error {
	if name == "." || name == ".." || strings.ContainsRune(name, 0) ||
		strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}
