package install

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOnPath(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		pathList string
		want     bool
	}{
		{
			name:     "member",
			dir:      "/home/u/.local/bin",
			pathList: "/usr/bin:/home/u/.local/bin:/bin",
			want:     true,
		},
		{
			name:     "member_with_trailing_slash",
			dir:      "/home/u/.local/bin",
			pathList: "/usr/bin:/home/u/.local/bin/",
			want:     true,
		},
		{
			name:     "absent",
			dir:      "/home/u/.local/bin",
			pathList: "/usr/bin:/bin",
			want:     false,
		},
		{
			name:     "empty_path",
			dir:      "/home/u/.local/bin",
			pathList: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnPath(tt.dir, tt.pathList); got != tt.want {
				t.Errorf("OnPath(%q, %q) = %v, want %v", tt.dir, tt.pathList, got, tt.want)
			}
		})
	}
}

func TestPathAdvice(t *testing.T) {
	got := PathAdvice("/home/u/.local/bin")
	want := `Add /home/u/.local/bin to your PATH: export PATH="/home/u/.local/bin:$PATH"`
	if got != want {
		t.Errorf("PathAdvice() = %q, want %q", got, want)
	}
}

func TestSmokeTest(t *testing.T) {
	dir := t.TempDir()

	ok := filepath.Join(dir, "ok")
	if err := os.WriteFile(ok, []byte("#!/bin/sh\necho v1.0.0\n"), 0755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := SmokeTest(context.Background(), ok); err != nil {
		t.Errorf("SmokeTest() error = %v", err)
	}

	bad := filepath.Join(dir, "bad")
	if err := os.WriteFile(bad, []byte("#!/bin/sh\nexit 3\n"), 0755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	err := SmokeTest(context.Background(), bad)
	if err == nil {
		t.Error("expected error for failing binary")
	} else if !strings.Contains(err.Error(), "--version") {
		t.Errorf("error %q does not name the version invocation", err)
	}
}
