package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathExportLine returns the exact line inserted into a profile for dir,
// including the trailing newline.
func PathExportLine(dir string) string {
	return fmt.Sprintf("export PATH=\"%s:$PATH\"\n", dir)
}

// FindProfile returns the first existing ProfileCandidates entry under home,
// or "" when none exists.
func FindProfile(home string) (string, error) {
	for _, name := range ProfileCandidates {
		path := filepath.Join(home, name)
		exists, err := ProfileExists(path)
		if err != nil {
			return "", err
		}
		if exists {
			return path, nil
		}
	}
	return "", nil
}

// ProfileExists checks if the profile exists
func ProfileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &RegistrationError{
			Path:    path,
			Message: "failed to stat file",
			Cause:   err,
		}
	}

	if !info.Mode().IsRegular() {
		return false, &RegistrationError{
			Path:    path,
			Message: "not a regular file",
		}
	}

	return true, nil
}

// HasLine reports whether the profile contains line verbatim.
func HasLine(path, line string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, &RegistrationError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}
	return strings.Contains(string(content), line), nil
}

// PrependLine writes line followed by the current contents back to path.
// This is an atomic operation using a temporary file.
func PrependLine(path, line string) error {
	// Rewrite the file a symlink points at rather than replacing the link.
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	info, err := os.Stat(path)
	if err != nil {
		return &RegistrationError{
			Path:    path,
			Message: "failed to stat file",
			Cause:   err,
		}
	}

	existingContent, err := os.ReadFile(path)
	if err != nil {
		return &RegistrationError{
			Path:    path,
			Message: "failed to read existing file",
			Cause:   err,
		}
	}

	// Create temporary file in the same directory (for atomic rename)
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return &RegistrationError{
			Path:    path,
			Message: "failed to create temporary file",
			Cause:   err,
		}
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(line); err != nil {
		tmpFile.Close()
		return &RegistrationError{
			Path:    path,
			Message: "failed to write export line",
			Cause:   err,
		}
	}

	if _, err := tmpFile.Write(existingContent); err != nil {
		tmpFile.Close()
		return &RegistrationError{
			Path:    path,
			Message: "failed to write existing content",
			Cause:   err,
		}
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return &RegistrationError{
			Path:    path,
			Message: "failed to sync file",
			Cause:   err,
		}
	}

	if err := tmpFile.Close(); err != nil {
		return &RegistrationError{
			Path:    path,
			Message: "failed to close temporary file",
			Cause:   err,
		}
	}

	// CreateTemp uses 0600; keep the profile's own permissions.
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return &RegistrationError{
			Path:    path,
			Message: "failed to copy file mode",
			Cause:   err,
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return &RegistrationError{
			Path:    path,
			Message: "failed to rename temp file",
			Cause:   err,
		}
	}

	return nil
}
