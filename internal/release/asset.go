package release

import "fmt"

// archiveExt is the fixed compressed-archive extension for all assets.
const archiveExt = ".tar.gz"

// Asset names one downloadable release artifact.
type Asset struct {
	Name string
	URL  string
}

// AssetName computes the deterministic archive filename for a binary at a
// concrete version and triple: <bin>-<version>-<triple>.tar.gz.
func AssetName(bin, version string, triple Triple) string {
	return fmt.Sprintf("%s-%s-%s%s", bin, version, triple, archiveExt)
}

// LocateAsset computes the asset name and download URL. The caller must
// pass a concrete version; the filename is never derived from the sentinel.
//
// When the original request was the "latest" sentinel, the URL uses the
// release host's stable latest/download shortcut, which needs no tag in the
// path. The shortcut can in principle point at a release published between
// tag resolution and download; that race is a known consistency gap
// inherited from the release host, not guarded against here. Pinned
// requests use the tag-specific download path.
func LocateAsset(slug, bin, version string, triple Triple, wantsLatest bool) Asset {
	name := AssetName(bin, version, triple)

	var url string
	if wantsLatest {
		url = fmt.Sprintf("%s/%s/releases/latest/download/%s", defaultHost, slug, name)
	} else {
		url = fmt.Sprintf("%s/%s/releases/download/%s/%s", defaultHost, slug, version, name)
	}

	return Asset{Name: name, URL: url}
}
