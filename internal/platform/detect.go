package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs platform detection and returns platform information.
// It uses runtime.GOOS and runtime.GOARCH for OS and architecture,
// and gopsutil for Linux distribution details.
//
// Distribution detection is best-effort: if gopsutil fails, the Distro
// field stays nil and detection still succeeds. A cancelled context is a
// hard failure.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	os, arch, err := Normalize(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return nil, err
	}

	info := &Info{
		OS:      os,
		Arch:    arch,
		OSRaw:   runtime.GOOS,
		ArchRaw: runtime.GOARCH,
	}

	if os == OSLinux {
		platform, _, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			// Distro details only feed log lines, keep going without them.
			return info, nil
		}
		if platform = strings.TrimSpace(platform); platform != "" {
			info.Distro = &Distro{
				ID:      strings.ToLower(platform),
				Version: strings.TrimSpace(version),
			}
		}
	}

	return info, nil
}
