// Package fetch wraps the external transfer tools used to talk to the
// release host. HTTP retrieval is treated as an opaque capability backed by
// exactly one of two interchangeable backends, curl or wget, whichever is
// found on the search path first. Neither backend retries, resumes, or
// applies a timeout: one request, one outcome.
package fetch

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "avup/1.0"

// Fetcher retrieves bytes from the release host.
type Fetcher interface {
	// Name identifies the backing tool ("curl" or "wget").
	Name() string

	// Download retrieves url into destPath. Any non-success outcome is a
	// *DownloadError carrying the requested URL.
	Download(ctx context.Context, url, destPath string) error

	// RedirectLocation issues a header-only request without following
	// redirects and returns the Location target, or "" when the response
	// is not a redirect.
	RedirectLocation(ctx context.Context, url string) (string, error)
}

// Options configures the selected backend.
type Options struct {
	// Token, when non-empty, is attached as a bearer credential.
	Token string
	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string
}

func (o Options) userAgent() string {
	if o.UserAgent != "" {
		return o.UserAgent
	}
	return DefaultUserAgent
}

// LookPath resolves a tool name to an executable path.
// It exists so tests can simulate hosts missing one or both tools.
type LookPath func(name string) (string, error)

// Detect selects the retrieval backend: curl when present, wget otherwise.
// A nil lookPath uses exec.LookPath. When neither tool exists, Detect
// fails with *MissingToolError before any network activity is possible.
func Detect(lookPath LookPath, opts Options) (Fetcher, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if path, err := lookPath("curl"); err == nil {
		return &Curl{path: path, opts: opts}, nil
	}
	if path, err := lookPath("wget"); err == nil {
		return &Wget{path: path, opts: opts}, nil
	}
	return nil, &MissingToolError{Tools: []string{"curl", "wget"}}
}

// MissingToolError reports that no retrieval backend is installed.
type MissingToolError struct {
	Tools []string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("no download tool available: install one of %s", strings.Join(e.Tools, ", "))
}

// DownloadError reports a failed retrieval, carrying the requested URL.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download failed: %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
