package ioutils

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// FileExists reports whether anything exists at path.
//
// Errors other than "not exist" (permission problems, for example) are
// reported as existing, so a caller never overwrites what it cannot inspect.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// WriteFileIfAbsent writes data to path unless a file is already there.
//
// It returns written=false and a nil error when the path exists. The write
// itself is not atomic: a failure part way leaves a truncated file behind.
//
// Parameters:
//   - ctx: Context for cancellation, checked once before writing
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	written, err := WriteFileIfAbsent(ctx, "/downloads/images_x/image_y.jpg", body)
//	if err == nil && !written {
//	    fmt.Println("already there")
//	}
func WriteFileIfAbsent(ctx context.Context, path string, data []byte) (bool, error) {
	if FileExists(path) {
		return false, nil
	}
	if err := WriteFile(ctx, path, data); err != nil {
		return false, err
	}
	return true, nil
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Nothing is written once ctx is done.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
