package platform

import "strings"

// osAliases maps raw OS identifiers to canonical OS values.
// Windows is deliberately absent: the Windows artifact ships through a
// different channel and this pipeline does not attempt to detect it.
var osAliases = map[string]OS{
	"linux":  OSLinux,
	"darwin": OSMacOS,
	"macos":  OSMacOS,
}

// archAliases maps raw architecture identifiers to canonical Arch values.
var archAliases = map[string]Arch{
	"amd64":   ArchX8664,
	"x86_64":  ArchX8664,
	"arm64":   ArchAArch64,
	"aarch64": ArchAArch64,
}

// NormalizeOS converts a raw OS name to its canonical value.
func NormalizeOS(raw string) (OS, error) {
	if os, ok := osAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return os, nil
	}
	return "", &UnsupportedPlatformError{OS: raw}
}

// NormalizeArch converts a raw architecture name to its canonical value.
func NormalizeArch(raw string) (Arch, error) {
	if arch, ok := archAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return arch, nil
	}
	return "", &UnsupportedPlatformError{Arch: raw}
}

// Normalize converts a raw (OS, arch) pair to canonical values.
// The OS is validated first so a host that is wrong on both axes reports
// the operating system.
func Normalize(rawOS, rawArch string) (OS, Arch, error) {
	os, err := NormalizeOS(rawOS)
	if err != nil {
		return "", "", err
	}
	arch, err := NormalizeArch(rawArch)
	if err != nil {
		return "", "", err
	}
	return os, arch, nil
}
