package release

import "testing"

func TestAssetName(t *testing.T) {
	got := AssetName("av", "v1.2.3", TripleLinuxX8664)
	want := "av-v1.2.3-x86_64-unknown-linux-gnu.tar.gz"
	if got != want {
		t.Errorf("AssetName() = %q, want %q", got, want)
	}

	// Pure function: identical inputs, identical output.
	if again := AssetName("av", "v1.2.3", TripleLinuxX8664); again != got {
		t.Errorf("AssetName() not deterministic: %q vs %q", again, got)
	}
}

func TestLocateAsset(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantsLatest bool
		wantURL     string
	}{
		{
			name:        "latest_uses_shortcut",
			version:     "v1.2.3",
			wantsLatest: true,
			wantURL:     "https://github.com/auv-sh/av/releases/latest/download/av-v1.2.3-x86_64-unknown-linux-gnu.tar.gz",
		},
		{
			name:    "pinned_uses_tag_path",
			version: "v1.2.3",
			wantURL: "https://github.com/auv-sh/av/releases/download/v1.2.3/av-v1.2.3-x86_64-unknown-linux-gnu.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := LocateAsset("auv-sh/av", "av", tt.version, TripleLinuxX8664, tt.wantsLatest)

			wantName := "av-v1.2.3-x86_64-unknown-linux-gnu.tar.gz"
			if asset.Name != wantName {
				t.Errorf("Name = %q, want %q", asset.Name, wantName)
			}
			if asset.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", asset.URL, tt.wantURL)
			}
		})
	}
}
