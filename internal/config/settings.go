package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/The-Fency-Project/fcyup/internal/artifact"
	"github.com/The-Fency-Project/fcyup/internal/platform"
	"github.com/The-Fency-Project/fcyup/internal/release"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	Home        string `mapstructure:"home"`
	APIURL      string `mapstructure:"api_url"`
	DownloadURL string `mapstructure:"download_url"`
	DownloadDir string `mapstructure:"download_dir"`
	Manifest    string `mapstructure:"manifest"`
	GitHubToken string `mapstructure:"github_token"`
	OS          string `mapstructure:"os"`
	Arch        string `mapstructure:"arch"`
	Verbose     bool   `mapstructure:"verbose"`
}

// flagKeys maps command-line flag names to setting keys.
var flagKeys = map[string]string{
	"home":         KeyHome,
	"api-url":      KeyAPIURL,
	"download-url": KeyDownloadURL,
	"download-dir": KeyDownloadDir,
	"manifest":     KeyManifest,
	"os":           KeyOS,
	"arch":         KeyArch,
	"verbose":      KeyVerbose,
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Empty defaults register the keys so Unmarshal sees environment values.
	v.SetDefault(KeyHome, "")
	v.SetDefault(KeyAPIURL, release.DefaultBaseURL)
	v.SetDefault(KeyDownloadURL, artifact.DefaultHost)
	v.SetDefault(KeyDownloadDir, "")
	v.SetDefault(KeyManifest, "")
	v.SetDefault(KeyGitHubToken, "")
	v.SetDefault(KeyOS, "")
	v.SetDefault(KeyArch, "")
	v.SetDefault(KeyVerbose, false)

	// The first variable that is set wins.
	_ = v.BindEnv(KeyGitHubToken, EnvPrefix+"_GITHUB_TOKEN", "GITHUB_TOKEN")

	return v
}

// RegisterFlags defines the setting flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("home", "", "home directory (default: current user's home)")
	fs.String("api-url", release.DefaultBaseURL, "GitHub API base URL")
	fs.String("download-url", artifact.DefaultHost, "release asset host")
	fs.String("download-dir", "", "directory for downloads before install (default: working directory)")
	fs.String("manifest", "", "Lua manifest declaring the projects to install")
	fs.String("os", "", "override the detected operating system")
	fs.String("arch", "", "override the detected architecture")
	fs.BoolP("verbose", "v", false, "enable debug logging")
}

// BindFlags binds the flags defined by RegisterFlags to v. Flags take
// precedence over environment variables only when set explicitly.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag --%s is not defined", name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load resolves settings from v, filling in home and download_dir from the
// environment when unset, and validates the result.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	s.Home = strings.TrimSpace(s.Home)
	s.DownloadDir = strings.TrimSpace(s.DownloadDir)
	s.GitHubToken = strings.TrimSpace(s.GitHubToken)
	s.OS = strings.TrimSpace(s.OS)
	s.Arch = strings.TrimSpace(s.Arch)

	if s.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		s.Home = home
	}

	if s.DownloadDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		s.DownloadDir = wd
	}

	var err error
	if s.Home, err = filepath.Abs(s.Home); err != nil {
		return nil, fmt.Errorf("resolve home: %w", err)
	}
	if s.DownloadDir, err = filepath.Abs(s.DownloadDir); err != nil {
		return nil, fmt.Errorf("resolve download dir: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the settings for obvious mistakes.
func (s *Settings) Validate() error {
	if s.Home == "" {
		return &ValidationError{Field: KeyHome, Message: "must not be empty"}
	}
	if err := validateBaseURL(s.APIURL); err != nil {
		return &ValidationError{Field: KeyAPIURL, Message: err.Error()}
	}
	if err := validateBaseURL(s.DownloadURL); err != nil {
		return &ValidationError{Field: KeyDownloadURL, Message: err.Error()}
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}

// ResolvePlatform runs d and applies the os/arch overrides on top of the
// detected values. Overrides go through the same normalization as detection.
func (s *Settings) ResolvePlatform(ctx context.Context, d platform.Detector) (*platform.Info, error) {
	info, err := d.Detect(ctx)
	if err != nil {
		return nil, err
	}
	if s.OS == "" && s.Arch == "" {
		return info, nil
	}

	rawOS, rawArch := info.OSRaw, info.ArchRaw
	if s.OS != "" {
		rawOS = s.OS
	}
	if s.Arch != "" {
		rawArch = s.Arch
	}
	return platform.New(rawOS, rawArch), nil
}

// Projects returns the manifest's projects, or DefaultProjects when no
// manifest is configured.
func (s *Settings) Projects(ctx context.Context, d platform.Detector, logger Logger) ([]ProjectRef, error) {
	if s.Manifest == "" {
		return DefaultProjects(), nil
	}
	p := NewParser(d)
	p.SetLogger(logger)
	return p.ParseFile(ctx, s.Manifest)
}
