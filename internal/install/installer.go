// Package install runs the bootstrap pipeline: detect the host platform,
// resolve the release to fetch, download and unpack the archive, and place
// the executable into a directory on the user's search path. Every stage is
// terminal on failure; there is no retry and no partial continuation.
package install

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/auv-sh/avup/internal/config"
	"github.com/auv-sh/avup/internal/fetch"
	"github.com/auv-sh/avup/internal/platform"
	"github.com/auv-sh/avup/internal/release"
)

// Installer orchestrates one installation run.
type Installer struct {
	cfg      *config.Config
	detector platform.Detector
	fetcher  fetch.Fetcher
	lookPath fetch.LookPath
	dirs     *DirResolver
	placer   *Placer
	logger   *zap.Logger
	out      io.Writer
	pathEnv  func() string
	agent    string
}

// Options configures an Installer. Config is required; everything else
// defaults to the production implementation and exists as a test seam.
type Options struct {
	Config    *config.Config
	Logger    *zap.Logger
	Out       io.Writer
	Detector  platform.Detector
	Fetcher   fetch.Fetcher
	LookPath  fetch.LookPath
	Dirs      *DirResolver
	Placer    *Placer
	PathEnv   func() string
	UserAgent string
}

// New creates an Installer.
func New(opts Options) (*Installer, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}

	in := &Installer{
		cfg:      opts.Config,
		detector: opts.Detector,
		fetcher:  opts.Fetcher,
		lookPath: opts.LookPath,
		dirs:     opts.Dirs,
		placer:   opts.Placer,
		logger:   opts.Logger,
		out:      opts.Out,
		pathEnv:  opts.PathEnv,
		agent:    opts.UserAgent,
	}
	if in.detector == nil {
		in.detector = platform.NewDetector()
	}
	if in.dirs == nil {
		in.dirs = NewDirResolver(opts.Config.InstallDir)
	}
	if in.placer == nil {
		in.placer = NewPlacer()
	}
	if in.logger == nil {
		in.logger = zap.NewNop()
	}
	if in.out == nil {
		in.out = os.Stdout
	}
	if in.pathEnv == nil {
		in.pathEnv = func() string { return os.Getenv("PATH") }
	}
	return in, nil
}

// Result is the terminal output of a successful run.
type Result struct {
	// Path is the final installed binary path.
	Path string
	// OnPath reports whether the install directory is already on the
	// user's search path.
	OnPath bool
	// Version is the concrete release tag that was installed.
	Version string
	// Triple is the target triple of the installed artifact.
	Triple release.Triple
}

// Run executes the pipeline. The scoped working directory is created
// before any network activity and removed on every exit path, including
// an interrupt delivered while a download or extraction is blocked: the
// deferred cleanup runs as soon as the context-aware stage returns.
func (in *Installer) Run(ctx context.Context) (*Result, error) {
	info, err := in.detector.Detect(ctx)
	if err != nil {
		return nil, err
	}
	in.logPlatform(info)

	triple, err := release.ResolveTriple(info)
	if err != nil {
		return nil, err
	}

	fetcher := in.fetcher
	if fetcher == nil {
		// Backend availability is checked before any network attempt.
		fetcher, err = fetch.Detect(in.lookPath, fetch.Options{
			Token:     in.cfg.AuthToken(),
			UserAgent: in.agent,
		})
		if err != nil {
			return nil, err
		}
		in.logger.Debug("selected download tool", zap.String("tool", fetcher.Name()))
	}

	workdir, err := NewWorkdir()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := workdir.Remove(); err != nil {
			in.logger.Warn("remove working directory", zap.Error(err))
		}
	}()

	version, err := release.ResolveVersion(ctx, fetcher, in.cfg.Repo, in.cfg.Version)
	if err != nil {
		return nil, err
	}
	in.logger.Debug("resolved version",
		zap.String("requested", in.cfg.Version),
		zap.String("version", version),
	)

	asset := release.LocateAsset(in.cfg.Repo, in.cfg.BinName, version, triple, in.cfg.WantsLatest())

	fmt.Fprintf(in.out, "Downloading %s\n", asset.URL)
	archivePath := workdir.Join(asset.Name)
	if err := fetcher.Download(ctx, asset.URL, archivePath); err != nil {
		return nil, err
	}

	fmt.Fprintf(in.out, "Unpacking %s\n", asset.Name)
	unpackDir := workdir.Join("unpacked")
	if err := ExtractArchive(archivePath, unpackDir); err != nil {
		return nil, err
	}

	srcBin, err := FindBinary(unpackDir, in.cfg.BinName)
	if err != nil {
		return nil, err
	}

	destDir, err := in.dirs.Resolve()
	if err != nil {
		return nil, err
	}

	binPath, err := in.placer.Place(srcBin, destDir, in.cfg.BinName)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(in.out, "Installed %s\n", binPath)

	onPath := OnPath(destDir, in.pathEnv())
	if !onPath {
		fmt.Fprintln(in.out, PathAdvice(destDir))
	}

	if err := SmokeTest(ctx, binPath); err != nil {
		in.logger.Warn("smoke test failed", zap.Error(err))
	} else {
		in.logger.Debug("smoke test passed", zap.String("binary", binPath))
	}

	return &Result{
		Path:    binPath,
		OnPath:  onPath,
		Version: version,
		Triple:  triple,
	}, nil
}

func (in *Installer) logPlatform(info *platform.Info) {
	fields := []zap.Field{
		zap.String("os", info.OS.String()),
		zap.String("arch", info.Arch.String()),
	}
	if info.Distro != nil {
		fields = append(fields,
			zap.String("distro", info.Distro.ID),
			zap.String("distro_version", info.Distro.Version),
		)
	}
	in.logger.Debug("detected platform", fields...)
}
