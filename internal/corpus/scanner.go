package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrUnreadable is returned when the source directory cannot be listed
var ErrUnreadable = errors.New("corpus directory unreadable")

// ErrNotEligible is returned when a named document is excluded, does not match the pattern or is not a regular file
var ErrNotEligible = errors.New("document not eligible")

// Scanner lists eligible documents in a flat source directory
type Scanner struct {
	dir     string
	pattern string
	exclude map[string]struct{}
}

// NewScanner creates a scanner for dir. The pattern is matched against bare
// filenames (for example "*.html"); exclude holds exact filenames to skip.
func NewScanner(dir, pattern string, exclude map[string]struct{}) (*Scanner, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid document pattern: %q", pattern)
	}
	if exclude == nil {
		exclude = map[string]struct{}{}
	}
	return &Scanner{dir: dir, pattern: pattern, exclude: exclude}, nil
}

// Path returns the full path of a document in the source directory
func (s *Scanner) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Scan returns the eligible document names in directory order.
// No recursion into subdirectories takes place.
func (s *Scanner) Scan() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !s.matches(name) {
			continue
		}
		if !s.isRegular(name) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// First returns the first eligible document, or ok=false if there is none
func (s *Scanner) First() (name string, ok bool, err error) {
	names, err := s.Scan()
	if err != nil {
		return "", false, err
	}
	if len(names) == 0 {
		return "", false, nil
	}
	return names[0], true, nil
}

// Lookup checks that a named document is an eligible member of the corpus
func (s *Scanner) Lookup(name string) error {
	if filepath.Base(name) != name {
		return fmt.Errorf("%w: %s is not a bare filename", ErrNotEligible, name)
	}
	if _, excluded := s.exclude[name]; excluded {
		return fmt.Errorf("%w: %s is excluded", ErrNotEligible, name)
	}
	if ok, _ := doublestar.Match(s.pattern, name); !ok {
		return fmt.Errorf("%w: %s does not match %s", ErrNotEligible, name, s.pattern)
	}
	if !s.isRegular(name) {
		return fmt.Errorf("%w: %s is not a regular file in %s", ErrNotEligible, name, s.dir)
	}
	return nil
}

// Read returns the full text content of a document
func (s *Scanner) Read(name string) (string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

func (s *Scanner) matches(name string) bool {
	if _, excluded := s.exclude[name]; excluded {
		return false
	}
	ok, err := doublestar.Match(s.pattern, name)
	return err == nil && ok
}

// isRegular follows symlinks, so a link to a regular file counts
func (s *Scanner) isRegular(name string) bool {
	info, err := os.Stat(s.Path(name))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
