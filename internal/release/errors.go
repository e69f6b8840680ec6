package release

import (
	"fmt"
	"time"
)

// ResolutionError is returned when the latest release of a project cannot be determined.
type ResolutionError struct {
	Owner   string
	Repo    string
	Message string
	Cause   error
}

func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resolve latest release of %s/%s: %s: %v", e.Owner, e.Repo, e.Message, e.Cause)
	}
	return fmt.Sprintf("resolve latest release of %s/%s: %s", e.Owner, e.Repo, e.Message)
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// RateLimitError is returned when the GitHub API rate limit is exhausted.
type RateLimitError struct {
	Limit   int
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("GitHub API rate limit of %d exceeded (resets at %s); set GITHUB_TOKEN to raise it",
		e.Limit, e.ResetAt.UTC().Format("15:04 UTC"))
}
