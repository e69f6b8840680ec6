package shell

import "fmt"

// Outcome is the result of a PATH registration attempt
type Outcome int

const (
	// OutcomeAlreadyPresent means the profile already contains the export line
	OutcomeAlreadyPresent Outcome = iota
	// OutcomeAppended means the export line was added to the profile
	OutcomeAppended
	// OutcomeManualActionRequired means the platform is not auto-registered (Windows)
	OutcomeManualActionRequired
	// OutcomeNoProfileFound means none of the candidate profiles exist
	OutcomeNoProfileFound
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyPresent:
		return "already-present"
	case OutcomeAppended:
		return "appended"
	case OutcomeManualActionRequired:
		return "manual-action-required"
	case OutcomeNoProfileFound:
		return "no-profile-found"
	default:
		return "unknown"
	}
}

// Result contains the result of a PATH registration attempt
type Result struct {
	// Outcome says what happened
	Outcome Outcome
	// ProfilePath is the selected profile (empty for ManualActionRequired and NoProfileFound)
	ProfilePath string
	// Line is the export line that was checked for or inserted
	Line string
}

// RegistrationError represents an error with shell profile operations.
// It is never fatal to an install.
type RegistrationError struct {
	Path    string
	Message string
	Cause   error
}

func (e *RegistrationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("profile error (%s): %s", e.Path, e.Message)
}

func (e *RegistrationError) Unwrap() error {
	return e.Cause
}
