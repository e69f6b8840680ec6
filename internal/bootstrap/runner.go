package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/The-Fency-Project/fcyup/internal/artifact"
	"github.com/The-Fency-Project/fcyup/internal/binary"
	"github.com/The-Fency-Project/fcyup/internal/config"
	"github.com/The-Fency-Project/fcyup/internal/platform"
	"github.com/The-Fency-Project/fcyup/internal/shell"
)

// Resolver looks up the latest release tag of a repository.
type Resolver interface {
	LatestTag(ctx context.Context, owner, repo string) (string, error)
}

// Fetcher downloads an artifact to a local path.
type Fetcher interface {
	Fetch(ctx context.Context, spec artifact.Spec, destPath string) error
}

// Installer moves a downloaded artifact into the managed install directory.
type Installer interface {
	InstallAs(downloadedFile, shortName string) (*binary.InstallTarget, error)
	IsInstalled(shortName string) (bool, error)
	Dir() string
}

// Registrar puts a directory on PATH through a shell profile.
type Registrar interface {
	RegisterIfNeeded(installDir string) (*shell.Result, error)
}

// Config wires a Runner.
type Config struct {
	Detector  platform.Detector
	Resolver  Resolver
	Fetcher   Fetcher
	Installer Installer

	// NewRegistrar builds the registrar once the platform is known.
	// Defaults to shell.NewRegistrar rooted at HomeDir.
	NewRegistrar func(info *platform.Info) (Registrar, error)
	HomeDir      string

	// DownloadHost is the release asset host (artifact.DefaultHost if empty)
	DownloadHost string
	// DownloadDir receives artifacts before they are installed
	DownloadDir string

	Projects []config.ProjectRef

	Out    io.Writer
	Logger config.Logger
	// Now times each download (time.Now if nil)
	Now func() time.Time
}

// Runner installs every configured project, one at a time.
type Runner struct {
	detector     platform.Detector
	resolver     Resolver
	fetcher      Fetcher
	installer    Installer
	newRegistrar func(info *platform.Info) (Registrar, error)
	downloadHost string
	downloadDir  string
	projects     []config.ProjectRef
	out          console
	logger       config.Logger
	now          func() time.Time
}

// NewRunner creates a runner from cfg.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Detector == nil {
		return nil, fmt.Errorf("Detector is required")
	}
	if cfg.Resolver == nil {
		return nil, fmt.Errorf("Resolver is required")
	}
	if cfg.Fetcher == nil {
		return nil, fmt.Errorf("Fetcher is required")
	}
	if cfg.Installer == nil {
		return nil, fmt.Errorf("Installer is required")
	}
	if len(cfg.Projects) == 0 {
		return nil, fmt.Errorf("at least one project is required")
	}

	newRegistrar := cfg.NewRegistrar
	if newRegistrar == nil {
		if cfg.HomeDir == "" {
			return nil, fmt.Errorf("HomeDir or NewRegistrar is required")
		}
		home := cfg.HomeDir
		newRegistrar = func(info *platform.Info) (Registrar, error) {
			return shell.NewRegistrar(shell.Config{HomeDir: home, Platform: info})
		}
	}

	host := cfg.DownloadHost
	if host == "" {
		host = artifact.DefaultHost
	}

	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	logger := cfg.Logger
	if logger == nil {
		logger = config.NopLogger()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Runner{
		detector:     cfg.Detector,
		resolver:     cfg.Resolver,
		fetcher:      cfg.Fetcher,
		installer:    cfg.Installer,
		newRegistrar: newRegistrar,
		downloadHost: host,
		downloadDir:  cfg.DownloadDir,
		projects:     cfg.Projects,
		out:          console{w: out},
		logger:       logger,
		now:          now,
	}, nil
}

// ProjectResult records what happened to one project.
type ProjectResult struct {
	Project      config.ProjectRef
	Tag          string
	Artifact     artifact.Spec
	Target       *binary.InstallTarget
	Registration *shell.Result
	// DownloadTime is how long the artifact download took.
	DownloadTime time.Duration
	// RegistrationErr is set when PATH registration failed after install.
	RegistrationErr error
}

// Result contains the results of a run.
type Result struct {
	Platform *platform.Info
	Projects []ProjectResult
}

// Run installs every project in order and stops at the first fatal error.
// The returned Result holds the projects completed before that error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	info, err := r.detector.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect platform: %w", err)
	}
	r.logger.Debug("detected platform", "os", info.OS, "arch", info.Arch, "os_raw", info.OSRaw, "arch_raw", info.ArchRaw)

	registrar, err := r.newRegistrar(info)
	if err != nil {
		return nil, fmt.Errorf("create path registrar: %w", err)
	}

	result := &Result{
		Platform: info,
		Projects: make([]ProjectResult, 0, len(r.projects)),
	}

	for _, project := range r.projects {
		pr, err := r.installProject(ctx, info, registrar, project)
		if err != nil {
			return result, err
		}
		result.Projects = append(result.Projects, *pr)
	}

	r.logger.Debug("bootstrap complete", "projects", len(result.Projects))
	return result, nil
}

func (r *Runner) installProject(ctx context.Context, info *platform.Info, registrar Registrar, project config.ProjectRef) (*ProjectResult, error) {
	pr := &ProjectResult{Project: project}

	tag, err := r.resolver.LatestTag(ctx, project.Owner, project.Repo)
	if err != nil {
		return nil, err
	}
	pr.Tag = tag
	r.out.found(project.Repo, tag)

	spec, err := artifact.Build(r.downloadHost, project.Owner, project.Repo, tag, info)
	if err != nil {
		return nil, fmt.Errorf("build artifact name for %s: %w", project, err)
	}
	pr.Artifact = spec
	r.logger.Debug("artifact", "project", project.String(), "file", spec.Filename, "url", spec.URL)

	// Check context before blocking I/O
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("operation cancelled: %w", err)
	}

	dest := filepath.Join(r.downloadDir, spec.Filename)
	started := r.now()
	if err := r.fetcher.Fetch(ctx, spec, dest); err != nil {
		return nil, err
	}
	pr.DownloadTime = r.now().Sub(started)
	r.out.downloaded(spec.Filename, pr.DownloadTime)

	if installed, err := r.installer.IsInstalled(spec.ShortName); err == nil && installed {
		r.logger.Info("replacing installed binary", "name", spec.ShortName, "tag", tag)
	}

	target, err := r.installer.InstallAs(dest, spec.ShortName)
	if err != nil {
		return nil, err
	}
	pr.Target = target
	r.logger.Debug("installed", "name", target.ShortName, "path", target.Path)

	reg, err := registrar.RegisterIfNeeded(r.installer.Dir())
	if err != nil {
		var regErr *shell.RegistrationError
		if !errors.As(err, &regErr) {
			return nil, err
		}
		r.logger.Warn("PATH registration failed", "err", err)
		r.out.warn(fmt.Sprintf("could not add %s to PATH: %v", r.installer.Dir(), err))
		pr.RegistrationErr = err
		return pr, nil
	}
	pr.Registration = reg
	r.report(reg, target)

	return pr, nil
}

// report prints the registration outcome.
func (r *Runner) report(reg *shell.Result, target *binary.InstallTarget) {
	switch reg.Outcome {
	case shell.OutcomeAppended:
		r.out.addedToProfile(reg.ProfilePath)
		r.out.restartShell()
	case shell.OutcomeAlreadyPresent:
		r.out.restartShell()
	case shell.OutcomeNoProfileFound:
		r.out.addToPathManually(target.ShortName)
	case shell.OutcomeManualActionRequired:
		r.out.windowsManual(r.installer.Dir(), target.ShortName)
	}
}
