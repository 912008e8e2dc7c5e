// Package testutil provides utilities for testing avup in isolation.
package testutil

import (
	"os"
	"testing"
)

// installerVars are every environment variable the installer reads.
var installerVars = []string{
	"AVUP_REPO",
	"AVUP_VERSION",
	"AVUP_BIN_NAME",
	"AVUP_INSTALL_DIR",
	"AVUP_GITHUB_TOKEN",
	"GITHUB_TOKEN",
	"AVUP_LOG_LEVEL",
	"AVUP_LOG_FORMAT",
}

// SetupTestEnv isolates a test from the developer's real environment:
// every installer variable is unset so built-in defaults apply, and HOME
// points into a temp directory so nothing can touch the real ~/.local/bin.
// Restoration is handled by the testing framework.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	for _, key := range installerVars {
		Unset(t, key)
	}
	return tmpDir
}

// Unset removes an environment variable for the duration of a test.
// t.Setenv registers the restore; the follow-up Unsetenv makes the
// variable genuinely absent rather than empty, which matters for
// defaulted configuration values.
func Unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}
