// Package config loads the immutable installer configuration from the
// environment. There are no command-line flags: every recognized option is
// an environment variable with a built-in default, read exactly once at
// startup. The resulting Config is a read-only snapshot shared by every
// pipeline stage.
package config

import (
	"context"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable configuration snapshot for one installer run.
type Config struct {
	// Repo is the GitHub repository slug (owner/name) publishing releases.
	Repo string `env:"AVUP_REPO, default=auv-sh/av"`
	// Version is the release tag to install, or the "latest" sentinel.
	Version string `env:"AVUP_VERSION, default=latest"`
	// BinName is the executable name expected at the archive top level.
	BinName string `env:"AVUP_BIN_NAME, default=av"`
	// InstallDir overrides the install directory policy when set.
	InstallDir string `env:"AVUP_INSTALL_DIR"`
	// Token is an avup-specific authorization token. It wins over
	// GitHubToken when both are set.
	Token string `env:"AVUP_GITHUB_TOKEN"`
	// GitHubToken is the conventional GITHUB_TOKEN fallback.
	GitHubToken string `env:"GITHUB_TOKEN"`

	Log *Log `env:", prefix=AVUP_LOG_"`
}

// Log configures diagnostic logging.
type Log struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=console"`
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AuthToken returns the bearer token to attach to release host requests,
// or "" for unauthenticated requests.
func (c *Config) AuthToken() string {
	if c.Token != "" {
		return c.Token
	}
	return c.GitHubToken
}

// WantsLatest reports whether the requested version is the "latest"
// sentinel rather than a concrete tag.
func (c *Config) WantsLatest() bool {
	return strings.EqualFold(c.Version, "latest")
}
