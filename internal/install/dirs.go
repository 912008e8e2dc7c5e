package install

import (
	"os"
	"path/filepath"
)

// defaultSystemBin is the system-wide binary directory considered when the
// per-user directory does not exist yet.
const defaultSystemBin = "/usr/local/bin"

// DirResolver chooses the install directory by a fixed, non-interactive
// priority policy:
//
//  1. the explicit override, when configured;
//  2. the per-user binary directory (~/.local/bin) when it already exists;
//  3. the system-wide binary directory when it is writable;
//  4. the per-user directory unconditionally, created on demand, even if
//     it is not yet on the search path.
//
// The choice is deterministic for a fixed configuration and never prompts.
type DirResolver struct {
	override  string
	systemBin string
	userHome  func() (string, error)
}

// NewDirResolver creates a resolver honoring the configured override.
func NewDirResolver(override string) *DirResolver {
	return &DirResolver{
		override:  override,
		systemBin: defaultSystemBin,
		userHome:  os.UserHomeDir,
	}
}

// Resolve returns the install directory, creating it when needed. A
// directory that cannot be created or written fails with *PermissionError.
func (r *DirResolver) Resolve() (string, error) {
	if r.override != "" {
		return r.ensure(r.override)
	}

	home, err := r.userHome()
	if err != nil {
		return "", &PermissionError{Dir: "~/.local/bin", Err: err}
	}
	userBin := filepath.Join(home, ".local", "bin")

	if info, err := os.Stat(userBin); err == nil && info.IsDir() {
		return r.ensure(userBin)
	}

	if dirWritable(r.systemBin) {
		return r.systemBin, nil
	}

	return r.ensure(userBin)
}

// ensure creates dir when missing and verifies it is writable.
func (r *DirResolver) ensure(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &PermissionError{Dir: dir, Err: err}
	}
	if err := writableErr(dir); err != nil {
		return "", &PermissionError{Dir: dir, Err: err}
	}
	return dir, nil
}

func dirWritable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	return writableErr(dir) == nil
}

// writableErr probes dir with a throwaway file; permission checks via mode
// bits alone miss read-only mounts.
func writableErr(dir string) error {
	f, err := os.CreateTemp(dir, ".avup-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
