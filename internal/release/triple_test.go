package release

import (
	"errors"
	"testing"

	"github.com/auv-sh/avup/internal/platform"
)

func TestResolveTriple(t *testing.T) {
	tests := []struct {
		name    string
		os      platform.OS
		arch    platform.Arch
		want    Triple
		wantErr bool
	}{
		{
			name: "linux_x86_64",
			os:   platform.OSLinux,
			arch: platform.ArchX8664,
			want: "x86_64-unknown-linux-gnu",
		},
		{
			name: "macos_aarch64",
			os:   platform.OSMacOS,
			arch: platform.ArchAArch64,
			want: "aarch64-apple-darwin",
		},
		{
			name:    "macos_x86_64_unpublished",
			os:      platform.OSMacOS,
			arch:    platform.ArchX8664,
			wantErr: true,
		},
		{
			name:    "linux_aarch64_unpublished",
			os:      platform.OSLinux,
			arch:    platform.ArchAArch64,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTriple(&platform.Info{OS: tt.os, Arch: tt.arch})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				var upe *platform.UnsupportedPlatformError
				if !errors.As(err, &upe) {
					t.Errorf("error type = %T, want *UnsupportedPlatformError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveTriple() = %q, want %q", got, tt.want)
			}
		})
	}
}
