// Package testutil provides utilities for testing fcyup in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// fcyupEnv lists the variables that change fcyup's behavior.
var fcyupEnv = []string{
	"FCYUP_HOME",
	"FCYUP_API_URL",
	"FCYUP_DOWNLOAD_URL",
	"FCYUP_DOWNLOAD_DIR",
	"FCYUP_MANIFEST",
	"FCYUP_GITHUB_TOKEN",
	"FCYUP_OS",
	"FCYUP_ARCH",
	"FCYUP_VERBOSE",
	"GITHUB_TOKEN",
}

// SetupTestEnv points HOME (and USERPROFILE) at a fresh temporary
// directory and clears fcyup's environment variables, so tests never touch
// the real ~/.fency or shell profiles. It returns the new home directory.
//
// The directory is removed by t.TempDir() cleanup.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	for _, key := range fcyupEnv {
		t.Setenv(key, "")
	}

	return home
}

// WriteProfile creates a shell profile named name under home with content.
func WriteProfile(t *testing.T, home, name, content string) string {
	t.Helper()

	path := filepath.Join(home, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write profile %s: %v", path, err)
	}
	return path
}
