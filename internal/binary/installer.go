package binary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Installer moves downloaded artifacts into the managed install directory.
type Installer struct {
	binDir string
}

// Config holds configuration for the installer
type Config struct {
	// HomeDir is the user's home directory; the install directory is <HomeDir>/.fency/bin
	HomeDir string
	// BinDir overrides the install directory when set
	BinDir string
}

// BinDir returns the managed install directory under home.
func BinDir(home string) string {
	return filepath.Join(home, ".fency", "bin")
}

// NewInstaller creates a new installer
func NewInstaller(config Config) (*Installer, error) {
	binDir := config.BinDir
	if binDir == "" {
		if config.HomeDir == "" {
			return nil, fmt.Errorf("HomeDir is required")
		}
		binDir = BinDir(config.HomeDir)
	}

	return &Installer{binDir: binDir}, nil
}

// Dir returns the managed install directory.
func (i *Installer) Dir() string {
	return i.binDir
}

// ShortName returns the canonical executable name of an artifact: the first
// hyphen-delimited segment of its base filename.
func ShortName(artifactPath string) string {
	base := filepath.Base(artifactPath)
	name, _, _ := strings.Cut(base, "-")
	return name
}

func validShortName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// TargetPath returns where an executable named shortName is installed.
func (i *Installer) TargetPath(shortName string) string {
	return filepath.Join(i.binDir, shortName)
}

// IsInstalled checks if an executable of that name is already installed
func (i *Installer) IsInstalled(shortName string) (bool, error) {
	info, err := os.Stat(i.TargetPath(shortName))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat binary: %w", err)
	}

	return info.Mode().IsRegular(), nil
}

// Install moves downloadedFile to <binDir>/<shortName> and makes it executable.
//
// Any existing file at the target is replaced without a version check. The
// move is a rename, so the download must live on the same filesystem as the
// install directory. If the permission change fails after the move, the file
// stays in place without the executable bit and an error is returned.
func (i *Installer) Install(downloadedFile string) (*InstallTarget, error) {
	return i.InstallAs(downloadedFile, ShortName(downloadedFile))
}

// InstallAs is Install with the executable name given by the caller, for
// downloads whose local path does not carry the artifact filename.
// shortName must be a single path element.
func (i *Installer) InstallAs(downloadedFile, shortName string) (*InstallTarget, error) {
	if !validShortName(shortName) {
		return nil, &InstallError{
			Path:    downloadedFile,
			Message: fmt.Sprintf("invalid executable name %q", shortName),
		}
	}

	if err := os.MkdirAll(i.binDir, 0755); err != nil {
		return nil, &InstallError{Path: i.binDir, Message: "failed to create install directory", Cause: err}
	}

	dest := i.TargetPath(shortName)

	if err := os.Rename(downloadedFile, dest); err != nil {
		return nil, &InstallError{Path: dest, Message: "failed to move artifact", Cause: err}
	}

	if err := SetExecutable(dest); err != nil {
		return nil, &InstallError{Path: dest, Message: "failed to set executable permission", Cause: err}
	}

	return &InstallTarget{ShortName: shortName, Path: dest}, nil
}

// SetExecutable sets mode 0755 (rwxr-xr-x) on path.
func SetExecutable(path string) error {
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("set executable: %w", err)
	}
	return nil
}
