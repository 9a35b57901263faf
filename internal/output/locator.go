package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// ErrExists is returned by Write when the target file is already present
var ErrExists = errors.New("output already exists")

// Locator resolves output paths of the form <root>/<prefix>_<code>/<filename>
type Locator struct {
	root   string
	prefix string
}

// NewLocator creates a locator below root using prefix for language subdirectories
func NewLocator(root, prefix string) *Locator {
	return &Locator{root: root, prefix: prefix}
}

// DirName returns the subdirectory name for a language code
func (l *Locator) DirName(code string) string {
	return fmt.Sprintf("%s_%s", l.prefix, code)
}

// Dir returns the full path of the language subdirectory
func (l *Locator) Dir(code string) string {
	return filepath.Join(l.root, l.DirName(code))
}

// EnsureDir creates the language subdirectory and any missing parents.
// Calling it repeatedly is safe.
func (l *Locator) EnsureDir(code string) (string, error) {
	dir := l.Dir(code)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return dir, nil
}

// Path returns the output path of a document for a language; the filename is kept as is
func (l *Locator) Path(code, filename string) string {
	return filepath.Join(l.Dir(code), filename)
}

// Exists reports whether a regular file is already present at the output path
func (l *Locator) Exists(code, filename string) bool {
	info, err := os.Stat(l.Path(code, filename))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Write persists translated content as UTF-8 text. The content is written
// and synced to a temporary file in the same directory, then renamed into
// place, so the output path never holds a partial document. Existing outputs
// are never replaced.
func (l *Locator) Write(code, filename, content string) (string, error) {
	path := l.Path(code, filename)
	if _, err := os.Lstat(path); err == nil {
		return path, fmt.Errorf("%w: %s", ErrExists, path)
	}

	pending, err := renameio.TempFile(filepath.Dir(path), path)
	if err != nil {
		return path, fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	defer pending.Cleanup()

	if _, err := pending.WriteString(content); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := pending.Chmod(0644); err != nil {
		return path, fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return path, fmt.Errorf("failed to move translation into place at %s: %w", path, err)
	}
	return path, nil
}
