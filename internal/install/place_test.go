package install

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "av")
	if err := os.WriteFile(src, []byte(content), 0755); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return src
}

func TestPlacerRename(t *testing.T) {
	src := writeSource(t, "binary-bytes")
	destDir := t.TempDir()

	dest, err := NewPlacer().Place(src, destDir, "av")
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if dest != filepath.Join(destDir, "av") {
		t.Errorf("dest = %q", dest)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(content) != "binary-bytes" {
		t.Errorf("content = %q, want binary-bytes", content)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("stat dest: %v", err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source still exists after rename")
	}
}

func TestPlacerCrossDeviceFallback(t *testing.T) {
	src := writeSource(t, "binary-bytes")
	destDir := t.TempDir()

	// Force the direct rename to fail the way a cross-filesystem move does.
	p := &Placer{rename: func(oldpath, newpath string) error {
		return errors.New("invalid cross-device link")
	}}

	dest, err := p.Place(src, destDir, "av")
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(content) != "binary-bytes" {
		t.Errorf("content = %q, want binary-bytes", content)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("stat dest: %v", err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Error("dest is not executable")
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source still exists after copy fallback")
	}

	// No staging leftovers.
	entries, err := os.ReadDir(destDir)
	if err != nil {
		t.Fatalf("read dest dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "av" {
		t.Errorf("dest dir entries = %v, want only av", entries)
	}
}

func TestPlacerUnwritableDestination(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are advisory for root")
	}

	src := writeSource(t, "binary-bytes")
	destDir := t.TempDir()
	if err := os.Chmod(destDir, 0555); err != nil {
		t.Fatalf("chmod dest dir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(destDir, 0755) })

	_, err := NewPlacer().Place(src, destDir, "av")
	if err == nil {
		t.Fatal("expected error but got none")
	}
	var pe *PermissionError
	if !errors.As(err, &pe) {
		t.Errorf("error type = %T, want *PermissionError", err)
	}

	// Failure leaves no half-written destination file.
	if _, err := os.Stat(filepath.Join(destDir, "av")); !os.IsNotExist(err) {
		t.Error("half-written destination file left behind")
	}
}
