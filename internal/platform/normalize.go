package platform

import (
	"strings"
)

// NormalizeOS maps a raw OS name to its canonical artifact name.
// Any value containing "darwin" (case-insensitive) becomes "macos";
// everything else is returned lower-cased and otherwise untouched.
func NormalizeOS(raw string) string {
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "darwin") {
		return OSMacOS
	}
	return lower
}

// NormalizeArch maps a raw machine architecture to its canonical artifact name.
// Any value containing "arm64" (case-insensitive) becomes "aarch64";
// everything else is returned lower-cased.
func NormalizeArch(raw string) string {
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "arm64") {
		return ArchAArch64
	}
	return lower
}

// New builds an Info from raw host strings.
func New(rawOS, rawArch string) *Info {
	return &Info{
		OS:      NormalizeOS(rawOS),
		Arch:    NormalizeArch(rawArch),
		OSRaw:   rawOS,
		ArchRaw: rawArch,
	}
}
