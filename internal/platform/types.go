// Package platform detects the host operating system and CPU architecture
// and maps them onto the canonical identifiers used for release assets.
//
// Raw identifiers from the Go runtime are normalized through a fixed alias
// table (amd64 -> x86_64, arm64 -> aarch64). Anything outside the supported
// set is rejected with UnsupportedPlatformError rather than coerced. On
// Linux, gopsutil supplies distribution details used for diagnostic logging
// only; distro detection failures fall back silently.
package platform

import (
	"context"
	"fmt"
)

// OS is a canonical operating system identifier.
type OS string

const (
	// OSLinux identifies a Linux host.
	OSLinux OS = "linux"
	// OSMacOS identifies a macOS host.
	OSMacOS OS = "macos"
)

// String returns the string representation of the OS.
func (o OS) String() string {
	return string(o)
}

// Arch is a canonical CPU architecture identifier.
type Arch string

const (
	// ArchX8664 identifies 64-bit x86.
	ArchX8664 Arch = "x86_64"
	// ArchAArch64 identifies 64-bit ARM.
	ArchAArch64 Arch = "aarch64"
)

// String returns the string representation of the architecture.
func (a Arch) String() string {
	return string(a)
}

// Info contains platform detection information.
// It is derived once from host queries and never mutated afterwards.
type Info struct {
	OS      OS     // canonical OS ("linux", "macos")
	Arch    Arch   // canonical architecture ("x86_64", "aarch64")
	OSRaw   string // original GOOS (e.g. "darwin")
	ArchRaw string // original GOARCH (e.g. "amd64")
	Distro  *Distro
}

// Distro contains Linux distribution information.
// This is nil on non-Linux platforms and when detection failed.
type Distro struct {
	ID      string // distro ID (e.g. "ubuntu")
	Version string // version (e.g. "22.04")
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == OSLinux
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == OSMacOS
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// UnsupportedPlatformError reports an OS/architecture combination for which
// no release artifact is published.
type UnsupportedPlatformError struct {
	OS   string
	Arch string
}

func (e *UnsupportedPlatformError) Error() string {
	switch {
	case e.OS != "" && e.Arch != "":
		return fmt.Sprintf("unsupported platform: %s/%s", e.OS, e.Arch)
	case e.OS != "":
		return fmt.Sprintf("unsupported operating system: %s", e.OS)
	default:
		return fmt.Sprintf("unsupported architecture: %s", e.Arch)
	}
}
