package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ProjectRef names a GitHub repository whose latest release is installed.
type ProjectRef struct {
	Owner string
	Repo  string
}

// String returns "owner/repo".
func (p ProjectRef) String() string {
	return p.Owner + "/" + p.Repo
}

// DefaultProjects returns the built-in project list, in install order.
func DefaultProjects() []ProjectRef {
	return []ProjectRef{
		{Owner: "Freemorger", Repo: "voxvm"},
		{Owner: "The-Fency-Project", Repo: "fencyc"},
	}
}

// ParseProjectRef parses "owner/repo".
func ParseProjectRef(s string) (ProjectRef, error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return ProjectRef{}, fmt.Errorf("invalid project %q (expected owner/repo)", s)
	}
	ref := ProjectRef{Owner: owner, Repo: repo}
	if err := ref.Validate(); err != nil {
		return ProjectRef{}, err
	}
	return ref, nil
}

var (
	ownerPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,38})$`)
	repoPattern  = regexp.MustCompile(`^[A-Za-z0-9._-]{1,100}$`)
)

// Validate checks that owner and repo are well-formed GitHub names.
func (p ProjectRef) Validate() error {
	if !ownerPattern.MatchString(p.Owner) {
		return &ValidationError{Field: "owner", Message: fmt.Sprintf("invalid owner %q", p.Owner)}
	}
	if !repoPattern.MatchString(p.Repo) || p.Repo == "." || p.Repo == ".." {
		return &ValidationError{Field: "repo", Message: fmt.Sprintf("invalid repo %q", p.Repo)}
	}
	return nil
}

// ValidationError represents a config validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "config validation failed for " + e.Field + ": " + e.Message
	}
	return "config validation failed: " + e.Message
}
