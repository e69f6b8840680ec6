package binary

import (
	"fmt"
)

// InstallTarget describes where an artifact was installed.
type InstallTarget struct {
	// ShortName is the canonical executable name, e.g. "voxvm"
	ShortName string
	// Path is the absolute path of the installed executable
	Path string
}

// Progress is a snapshot of an in-flight download.
type Progress struct {
	// Downloaded is the number of bytes written so far
	Downloaded int64
	// Total is the declared Content-Length, or -1 when unknown
	Total int64
}

// Percent returns the completed percentage and whether the total size is known.
func (p Progress) Percent() (float64, bool) {
	if p.Total <= 0 {
		return 0, false
	}
	return float64(p.Downloaded) / float64(p.Total) * 100.0, true
}

// ProgressFunc receives download progress. It is called on the downloading
// goroutine, so it must return quickly.
type ProgressFunc func(Progress)

// DownloadError is returned when an artifact cannot be fetched or written.
type DownloadError struct {
	URL   string
	Path  string
	Cause error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s to %s: %v", e.URL, e.Path, e.Cause)
}

func (e *DownloadError) Unwrap() error {
	return e.Cause
}

// InstallError is returned when an artifact cannot be placed in the install directory.
type InstallError struct {
	Path    string
	Message string
	Cause   error
}

func (e *InstallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("install error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("install error (%s): %s", e.Path, e.Message)
}

func (e *InstallError) Unwrap() error {
	return e.Cause
}
