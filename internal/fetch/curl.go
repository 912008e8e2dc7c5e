package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Curl is the curl-backed Fetcher.
type Curl struct {
	path string
	opts Options
}

// Name returns "curl".
func (c *Curl) Name() string { return "curl" }

// Download retrieves url into destPath with a single curl invocation.
func (c *Curl) Download(ctx context.Context, url, destPath string) error {
	args := c.downloadArgs(url, destPath)

	cmd := exec.CommandContext(ctx, c.path, args...)
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

// RedirectLocation asks curl for the redirect target of url without
// following it. curl prints %{redirect_url} to stdout; headers go to
// /dev/null so the two streams cannot mix.
func (c *Curl) RedirectLocation(ctx context.Context, url string) (string, error) {
	args := c.redirectArgs(url)

	cmd := exec.CommandContext(ctx, c.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("curl: %s", msg)
		}
		return "", fmt.Errorf("curl: %w", err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (c *Curl) downloadArgs(url, destPath string) []string {
	args := []string{"--fail", "--silent", "--show-error", "--location",
		"--user-agent", c.opts.userAgent(),
		"--output", destPath,
	}
	args = append(args, c.authArgs()...)
	return append(args, url)
}

func (c *Curl) redirectArgs(url string) []string {
	args := []string{"--silent", "--head",
		"--user-agent", c.opts.userAgent(),
		"--output", "/dev/null",
		"--write-out", "%{redirect_url}",
	}
	args = append(args, c.authArgs()...)
	return append(args, url)
}

func (c *Curl) authArgs() []string {
	if c.opts.Token == "" {
		return nil
	}
	return []string{"--header", "Authorization: Bearer " + c.opts.Token}
}
