// Package release resolves which published artifact to install: the target
// triple for the host platform, the concrete release tag, and the asset
// name and download URL derived from both.
package release

import (
	"github.com/auv-sh/avup/internal/platform"
)

// Triple identifies an (OS, architecture, ABI) combination for which a
// build artifact is published.
type Triple string

const (
	// TripleLinuxX8664 is the published Linux artifact.
	TripleLinuxX8664 Triple = "x86_64-unknown-linux-gnu"
	// TripleMacOSAArch64 is the published Apple Silicon artifact.
	TripleMacOSAArch64 Triple = "aarch64-apple-darwin"
)

// String returns the string representation of the triple.
func (t Triple) String() string {
	return string(t)
}

type platformKey struct {
	os   platform.OS
	arch platform.Arch
}

// tripleTable maps platforms to published triples. It lists the artifacts
// actually built by the release workflow, not the cross product of OS and
// architecture: conceptually valid pairs such as macos/x86_64 stay
// unsupported until an entry is added here.
var tripleTable = map[platformKey]Triple{
	{os: platform.OSLinux, arch: platform.ArchX8664}:   TripleLinuxX8664,
	{os: platform.OSMacOS, arch: platform.ArchAArch64}: TripleMacOSAArch64,
}

// ResolveTriple maps a detected platform to its published target triple.
// Platforms without a published artifact fail with
// *platform.UnsupportedPlatformError.
func ResolveTriple(info *platform.Info) (Triple, error) {
	if triple, ok := tripleTable[platformKey{os: info.OS, arch: info.Arch}]; ok {
		return triple, nil
	}
	return "", &platform.UnsupportedPlatformError{
		OS:   info.OS.String(),
		Arch: info.Arch.String(),
	}
}
