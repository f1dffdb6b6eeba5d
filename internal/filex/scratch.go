// Package filex manages short-lived scratch directories used to hand images
// to external tools that only accept file paths.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// Scratch is a private temporary directory removed by Cleanup.
type Scratch struct {
	Dir string
}

// NewScratch creates a 0700 directory under base (os.TempDir() when empty).
func NewScratch(base, prefix string) (*Scratch, error) {
	if base != "" {
		if err := os.MkdirAll(base, 0o700); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", base, err)
		}
	}
	dir, err := os.MkdirTemp(base, prefix)
	if err != nil {
		return nil, fmt.Errorf("mkdtemp: %w", err)
	}
	return &Scratch{Dir: dir}, nil
}

// Path joins name onto the scratch directory.
func (s *Scratch) Path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name))
}

// Write stores data under name and returns its full path.
func (s *Scratch) Write(name string, data []byte) (string, error) {
	p := s.Path(name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", p, err)
	}
	return p, nil
}

// Read returns the contents of name.
func (s *Scratch) Read(name string) ([]byte, error) {
	return os.ReadFile(s.Path(name))
}

// Cleanup removes the directory and everything in it.
func (s *Scratch) Cleanup() error {
	return os.RemoveAll(s.Dir)
}
