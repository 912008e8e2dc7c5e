package install

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// OnPath reports whether dir is a member of the given search-path list.
func OnPath(dir, pathList string) bool {
	clean := filepath.Clean(dir)
	for _, entry := range strings.Split(pathList, string(os.PathListSeparator)) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == clean {
			return true
		}
	}
	return false
}

// PathAdvice returns the advisory line shown when the install directory is
// absent from the search path. The installer only ever advises; it never
// edits profile files.
func PathAdvice(dir string) string {
	return fmt.Sprintf(`Add %s to your PATH: export PATH="%s:$PATH"`, dir, dir)
}

// SmokeTest invokes the freshly installed binary with its version flag.
// The outcome is informational only and never changes the install result.
func SmokeTest(ctx context.Context, binPath string) error {
	cmd := exec.CommandContext(ctx, binPath, "--version")
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s --version: %w", binPath, err)
	}
	return nil
}
