package shell

import (
	"fmt"

	"github.com/The-Fency-Project/fcyup/internal/platform"
)

// Config holds configuration for the registrar
type Config struct {
	// HomeDir is where the candidate profiles are looked up
	HomeDir string
	// Platform decides whether profiles are edited at all
	Platform *platform.Info
}

// Registrar adds the managed install directory to PATH via a shell profile.
type Registrar struct {
	homeDir  string
	platform *platform.Info
}

// NewRegistrar creates a new registrar
func NewRegistrar(config Config) (*Registrar, error) {
	if config.HomeDir == "" {
		return nil, fmt.Errorf("HomeDir is required")
	}

	if config.Platform == nil {
		return nil, fmt.Errorf("Platform is required")
	}

	return &Registrar{
		homeDir:  config.HomeDir,
		platform: config.Platform,
	}, nil
}

// RegisterIfNeeded makes sure installDir is put on PATH by the user's shell profile.
//
// Windows always yields OutcomeManualActionRequired without touching the
// filesystem. Elsewhere the first existing candidate profile is checked for
// the exact export line and rewritten with the line prepended if it is
// missing. Failures are returned as *RegistrationError.
func (r *Registrar) RegisterIfNeeded(installDir string) (*Result, error) {
	line := PathExportLine(installDir)

	if r.platform.IsWindows() {
		return &Result{Outcome: OutcomeManualActionRequired, Line: line}, nil
	}

	profile, err := FindProfile(r.homeDir)
	if err != nil {
		return nil, err
	}
	if profile == "" {
		return &Result{Outcome: OutcomeNoProfileFound, Line: line}, nil
	}

	present, err := HasLine(profile, line)
	if err != nil {
		return nil, err
	}
	if present {
		return &Result{Outcome: OutcomeAlreadyPresent, ProfilePath: profile, Line: line}, nil
	}

	if err := PrependLine(profile, line); err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeAppended, ProfilePath: profile, Line: line}, nil
}
