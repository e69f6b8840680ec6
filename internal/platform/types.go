// Package platform detects the host operating system and CPU architecture
// and normalizes them to the vocabulary used in release artifact names.
//
// Raw values come from the kernel (via gopsutil) rather than from the Go
// toolchain, so an x86-64 Linux host reports "x86_64" and an Apple Silicon
// Mac reports "arm64" before normalization. Normalization never rejects a
// value: anything that is not explicitly mapped is passed through
// lower-cased so that new platforms keep working without a code change.
package platform

import "context"

// Canonical operating system names used in artifact filenames.
const (
	OSLinux   = "linux"
	OSMacOS   = "macos"
	OSWindows = "windows"
)

// Canonical architecture names used in artifact filenames.
const (
	ArchX86_64  = "x86_64"
	ArchAArch64 = "aarch64"
)

// Info is the normalized platform descriptor for one run.
// It is built once and never mutated afterwards.
type Info struct {
	OS      string // canonical OS, e.g. "linux", "macos", "windows"
	Arch    string // canonical arch, e.g. "x86_64", "aarch64"
	OSRaw   string // value reported by the host before normalization
	ArchRaw string // machine string reported by the kernel (uname -m)
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == OSLinux
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == OSMacOS
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == OSWindows
}

// IsX86_64 returns true if the architecture is x86_64.
func (i *Info) IsX86_64() bool {
	return i.Arch == ArchX86_64
}

// IsAArch64 returns true if the architecture is aarch64.
func (i *Info) IsAArch64() bool {
	return i.Arch == ArchAArch64
}

// String returns "os/arch".
func (i *Info) String() string {
	return i.OS + "/" + i.Arch
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
