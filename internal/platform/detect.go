package platform

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Windows environment variables holding the machine name, WOW64 first.
var windowsArchEnv = []string{"PROCESSOR_ARCHITEW6432", "PROCESSOR_ARCHITECTURE"}

// RealDetector implements Detector using actual platform detection.
type RealDetector struct {
	// goos, kernelArch and getenv are swapped out in tests.
	goos       string
	kernelArch func() (string, error)
	getenv     func(string) string
}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{goos: runtime.GOOS, kernelArch: host.KernelArch, getenv: os.Getenv}
}

// Detect reads the host OS name and machine architecture and normalizes them.
//
// On Windows the machine string is the PROCESSOR_ARCHITECTURE value
// (AMD64, ARM64, x86), which lower-cases to the names Windows release
// assets are published under. Elsewhere it comes from gopsutil's uname
// reading. If neither yields a value, runtime.GOARCH is used; detection
// itself never fails on an unrecognized value.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("platform detection cancelled: %w", err)
	}

	goos := d.goos
	if goos == "" {
		goos = runtime.GOOS
	}

	return New(goos, d.machine(goos)), nil
}

func (d *RealDetector) machine(goos string) string {
	if goos == "windows" && d.getenv != nil {
		for _, key := range windowsArchEnv {
			if arch := strings.TrimSpace(d.getenv(key)); arch != "" {
				return arch
			}
		}
	}

	if d.kernelArch != nil {
		if arch, err := d.kernelArch(); err == nil && strings.TrimSpace(arch) != "" {
			return strings.TrimSpace(arch)
		}
	}

	return runtime.GOARCH
}

// StaticDetector returns a fixed Info. It is used for --os/--arch overrides.
type StaticDetector struct {
	Info *Info
}

// Detect returns the configured Info.
func (s StaticDetector) Detect(ctx context.Context) (*Info, error) {
	if s.Info == nil {
		return nil, fmt.Errorf("static platform info is nil")
	}
	return s.Info, nil
}
