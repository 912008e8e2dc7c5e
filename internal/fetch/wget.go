package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Wget is the wget-backed Fetcher, used when curl is not installed.
type Wget struct {
	path string
	opts Options
}

// Name returns "wget".
func (w *Wget) Name() string { return "wget" }

// Download retrieves url into destPath with a single wget invocation.
func (w *Wget) Download(ctx context.Context, url, destPath string) error {
	args := w.downloadArgs(url, destPath)

	cmd := exec.CommandContext(ctx, w.path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return &DownloadError{URL: url, Err: fmt.Errorf("%s", msg)}
		}
		return &DownloadError{URL: url, Err: err}
	}
	return nil
}

// RedirectLocation probes url in spider mode with redirects disabled and
// scrapes the Location header from wget's server-response dump. wget exits
// non-zero when it refuses to follow the redirect, so the exit code is
// ignored whenever a Location line was seen.
func (w *Wget) RedirectLocation(ctx context.Context, url string) (string, error) {
	args := w.redirectArgs(url)

	cmd := exec.CommandContext(ctx, w.path, args...)
	out, runErr := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if loc := parseLocation(string(out)); loc != "" {
		return loc, nil
	}
	if runErr != nil {
		return "", fmt.Errorf("wget: %w", runErr)
	}
	return "", nil
}

func (w *Wget) downloadArgs(url, destPath string) []string {
	args := []string{"--quiet",
		"--user-agent=" + w.opts.userAgent(),
		"--output-document=" + destPath,
	}
	args = append(args, w.authArgs()...)
	return append(args, url)
}

func (w *Wget) redirectArgs(url string) []string {
	args := []string{"--spider", "--max-redirect=0", "--server-response",
		"--user-agent=" + w.opts.userAgent(),
	}
	args = append(args, w.authArgs()...)
	return append(args, url)
}

func (w *Wget) authArgs() []string {
	if w.opts.Token == "" {
		return nil
	}
	return []string{"--header=Authorization: Bearer " + w.opts.Token}
}

// parseLocation extracts the last Location header from a wget
// --server-response dump.
func parseLocation(out string) string {
	var loc string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "Location:"); ok {
			loc = strings.TrimSpace(rest)
		}
	}
	return loc
}
