package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/The-Fency-Project/fcyup/internal/binary"
	"github.com/The-Fency-Project/fcyup/internal/bootstrap"
	"github.com/The-Fency-Project/fcyup/internal/config"
	"github.com/The-Fency-Project/fcyup/internal/platform"
	"github.com/The-Fency-Project/fcyup/internal/release"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

func userAgent() string {
	return "fcyup/" + Version
}

// newRootCmd builds the command tree. Each call gets its own viper
// instance so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:   "fcyup",
		Short: "Install the Fency toolchain",
		Long: TitleStyle.Render("fcyup") + SubtitleStyle.Render(" - install the Fency toolchain") + `

fcyup downloads the latest release of voxvm and fencyc for this machine,
installs them into ~/.fency/bin and adds that directory to PATH in the
first of ~/.zshrc, ~/.bashrc or ~/.profile that exists.

` + SubtitleStyle.Render("Examples:") + `
  fcyup                         Install or upgrade everything
  fcyup --manifest fcyup.lua    Install the projects a manifest declares
  fcyup platform                Show the detected platform`,
		Version:       getVersionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.BindFlags(v, cmd.Root().PersistentFlags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd.Context(), v, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(newPlatformCmd(v))

	return root
}

// runBootstrap wires the pipeline from settings and runs it.
func runBootstrap(ctx context.Context, v *viper.Viper, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, settings.Verbose)

	info, err := settings.ResolvePlatform(ctx, platform.NewDetector())
	if err != nil {
		return fmt.Errorf("detect platform: %w", err)
	}
	detector := platform.StaticDetector{Info: info}

	projects, err := settings.Projects(ctx, detector, logger)
	if err != nil {
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("manifest %s: %s", settings.Manifest, config.FormatError(parseErr, settings.Verbose))
		}
		return err
	}

	installer, err := binary.NewInstaller(binary.Config{HomeDir: settings.Home})
	if err != nil {
		return err
	}

	runner, err := bootstrap.NewRunner(bootstrap.Config{
		Detector: detector,
		Resolver: release.NewGitHubClient(
			release.WithBaseURL(settings.APIURL),
			release.WithToken(settings.GitHubToken),
			release.WithUserAgent(userAgent()),
		),
		Fetcher: binary.NewDownloader(
			binary.WithUserAgent(userAgent()),
			binary.WithProgress(binary.ConsoleProgress(stdout)),
		),
		Installer:    installer,
		HomeDir:      settings.Home,
		DownloadHost: settings.DownloadURL,
		DownloadDir:  settings.DownloadDir,
		Projects:     projects,
		Out:          stdout,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	_, err = runner.Run(ctx)
	return err
}
