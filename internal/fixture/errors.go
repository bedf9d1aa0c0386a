package fixture

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound is matched by read errors for paths that do not exist
	ErrNotFound = errors.New("file not found")

	// ErrInvalidFilename is returned when a requested filename is not a single base name
	ErrInvalidFilename = errors.New("filename must be a single base name")
)

// IOError describes a failed filesystem step
type IOError struct {
	Op   string // create, write, close, mkdir, rename, abs or read
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports missing files as ErrNotFound
func (e *IOError) Is(target error) bool {
	return target == ErrNotFound && errors.Is(e.Err, fs.ErrNotExist)
}
