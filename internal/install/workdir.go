package install

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workdir is the scoped temporary directory shared by the download and
// extraction stages. It is created once before any network activity and
// must be removed on every exit path; callers defer Remove immediately
// after a successful NewWorkdir.
type Workdir struct {
	path string
}

// NewWorkdir creates the temporary working directory.
func NewWorkdir() (*Workdir, error) {
	path, err := os.MkdirTemp("", "avup-*")
	if err != nil {
		return nil, fmt.Errorf("create working directory: %w", err)
	}
	return &Workdir{path: path}, nil
}

// Path returns the working directory path.
func (w *Workdir) Path() string {
	return w.path
}

// Join returns a path inside the working directory.
func (w *Workdir) Join(name string) string {
	return filepath.Join(w.path, name)
}

// Remove deletes the working directory and everything in it.
func (w *Workdir) Remove() error {
	return os.RemoveAll(w.path)
}
