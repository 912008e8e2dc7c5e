package testutil

import (
	"os"
	"testing"
)

func TestSetupTestEnv(t *testing.T) {
	tmpDir := SetupTestEnv(t)

	if home := os.Getenv("HOME"); home != tmpDir {
		t.Errorf("HOME = %q, want %q", home, tmpDir)
	}
	for _, key := range installerVars {
		if _, ok := os.LookupEnv(key); ok {
			t.Errorf("%s is still set", key)
		}
	}
}

func TestUnset(t *testing.T) {
	t.Setenv("AVUP_TEST_ONLY", "value")
	Unset(t, "AVUP_TEST_ONLY")
	if _, ok := os.LookupEnv("AVUP_TEST_ONLY"); ok {
		t.Error("variable is still set after Unset")
	}
}
