package release

import (
	"context"
	"fmt"
	"strings"

	"github.com/auv-sh/avup/internal/fetch"
)

// Latest is the version sentinel resolved against the release host.
const Latest = "latest"

// defaultHost is the release host serving archives and tag redirects.
const defaultHost = "https://github.com"

// VersionResolutionError reports a failure to turn the "latest" sentinel
// into a concrete release tag.
type VersionResolutionError struct {
	Reason string
	Err    error
}

func (e *VersionResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve latest version: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("resolve latest version: %s", e.Reason)
}

func (e *VersionResolutionError) Unwrap() error { return e.Err }

// ResolveVersion turns a requested version into a concrete, normalized
// release tag. The "latest" sentinel is resolved with a single header-only
// request: the release host answers its canonical latest-release URL with a
// redirect whose path ends in "tag/<tag>". A pinned version is returned
// without any network activity. All returned tags carry a leading "v".
func ResolveVersion(ctx context.Context, f fetch.Fetcher, slug, requested string) (string, error) {
	if !strings.EqualFold(requested, Latest) {
		return NormalizeTag(requested), nil
	}

	url := fmt.Sprintf("%s/%s/releases/latest", defaultHost, slug)
	location, err := f.RedirectLocation(ctx, url)
	if err != nil {
		return "", &VersionResolutionError{Reason: "request failed", Err: err}
	}
	if location == "" {
		return "", &VersionResolutionError{Reason: fmt.Sprintf("no redirect from %s", url)}
	}

	tag, err := tagFromLocation(location)
	if err != nil {
		return "", err
	}
	return NormalizeTag(tag), nil
}

// NormalizeTag ensures a tag carries the leading version marker.
func NormalizeTag(tag string) string {
	if tag == "" || strings.HasPrefix(tag, "v") {
		return tag
	}
	return "v" + tag
}

// tagFromLocation extracts the tag from a redirect target such as
// https://github.com/auv-sh/av/releases/tag/v1.2.3.
func tagFromLocation(location string) (string, error) {
	const marker = "/tag/"

	idx := strings.LastIndex(location, marker)
	if idx < 0 {
		return "", &VersionResolutionError{Reason: fmt.Sprintf("redirect target %q has no tag segment", location)}
	}

	tag := location[idx+len(marker):]
	if cut := strings.IndexAny(tag, "/?#"); cut >= 0 {
		tag = tag[:cut]
	}
	if tag == "" {
		return "", &VersionResolutionError{Reason: fmt.Sprintf("redirect target %q has an empty tag", location)}
	}
	return tag, nil
}
