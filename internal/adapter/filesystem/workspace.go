package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"learnlog/internal/domain/ports"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct {
	root string
}

var _ ports.Workspace = (*Workspace)(nil)

// New creates a Workspace rooted at root. Nothing is created on disk.
func New(root string) *Workspace {
	return &Workspace{root: root}
}

// Path joins rel onto the root.
func (w *Workspace) Path(rel ...string) string {
	parts := make([]string, 0, len(rel)+1)
	parts = append(parts, w.root)
	for _, r := range rel {
		parts = append(parts, filepath.FromSlash(r))
	}
	return filepath.Join(parts...)
}

// EnsureDir creates rel and its parents.
func (w *Workspace) EnsureDir(rel string) error {
	if err := os.MkdirAll(w.Path(rel), dirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", w.Path(rel), err)
	}
	return nil
}

// Exists reports whether rel is present.
func (w *Workspace) Exists(rel string) (bool, error) {
	_, err := os.Stat(w.Path(rel))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", w.Path(rel), err)
	}
}

// ReadFile returns the content of rel, or "" if it does not exist.
func (w *Workspace) ReadFile(rel string) (string, error) {
	data, err := os.ReadFile(w.Path(rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", w.Path(rel), err)
	}
	return string(data), nil
}

// WriteFile replaces rel with content.
func (w *Workspace) WriteFile(rel, content string) error {
	if err := os.WriteFile(w.Path(rel), []byte(content), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", w.Path(rel), err)
	}
	return nil
}

// Glob lists entry names directly inside dir that match pattern.
func (w *Workspace) Glob(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	entries, err := os.ReadDir(w.Path(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", w.Path(dir), err)
	}

	var names []string
	for _, entry := range entries {
		if ok, _ := doublestar.Match(pattern, entry.Name()); ok {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
