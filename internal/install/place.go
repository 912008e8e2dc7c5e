package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Placer moves the extracted binary into the install directory. It tries a
// direct rename first and falls back to copy-then-remove when the rename
// fails, which happens when the temporary directory and the install
// directory sit on different filesystems. The copy goes through a staging
// file in the destination directory renamed into place, so a failure at
// any point leaves no half-written destination file.
type Placer struct {
	rename func(oldpath, newpath string) error
}

// NewPlacer creates a placer using os.Rename for the direct move.
func NewPlacer() *Placer {
	return &Placer{rename: os.Rename}
}

// Place relocates src into destDir under name, sets the execute bits, and
// returns the final path.
func (p *Placer) Place(src, destDir, name string) (string, error) {
	dest := filepath.Join(destDir, name)

	if err := p.rename(src, dest); err != nil {
		if err := p.copyThenRemove(src, destDir, dest); err != nil {
			return "", err
		}
	}

	if err := os.Chmod(dest, 0755); err != nil {
		return "", fmt.Errorf("set executable on %s: %w", dest, err)
	}
	return dest, nil
}

func (p *Placer) copyThenRemove(src, destDir, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	staged, err := os.CreateTemp(destDir, "."+filepath.Base(dest)+"-*")
	if err != nil {
		return &PermissionError{Dir: destDir, Err: err}
	}
	stagedPath := staged.Name()

	keep := false
	defer func() {
		staged.Close()
		if !keep {
			os.Remove(stagedPath)
		}
	}()

	if _, err := io.Copy(staged, in); err != nil {
		return fmt.Errorf("copy to %s: %w", stagedPath, err)
	}
	if err := staged.Chmod(0755); err != nil {
		return fmt.Errorf("set executable on %s: %w", stagedPath, err)
	}
	if err := staged.Close(); err != nil {
		return fmt.Errorf("close %s: %w", stagedPath, err)
	}

	// Same-directory rename, atomic on every supported filesystem.
	if err := os.Rename(stagedPath, dest); err != nil {
		return &PermissionError{Dir: destDir, Err: err}
	}
	keep = true

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source %s: %w", src, err)
	}
	return nil
}
