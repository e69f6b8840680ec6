package binary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/The-Fency-Project/fcyup/internal/artifact"
)

const (
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "fcyup/dev"
	// partSuffix is appended to the destination while the body is being written
	partSuffix = ".part"
	// maxRedirects bounds the release-host to CDN redirect chain
	maxRedirects = 10
)

// Downloader fetches release artifacts over HTTP.
type Downloader struct {
	client    *http.Client
	userAgent string
	progress  ProgressFunc
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithHTTPClient replaces the HTTP client. Tests use this to reach httptest servers.
func WithHTTPClient(c *http.Client) DownloaderOption {
	return func(d *Downloader) {
		d.client = c
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) DownloaderOption {
	return func(d *Downloader) {
		d.userAgent = ua
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) DownloaderOption {
	return func(d *Downloader) {
		d.progress = fn
	}
}

// NewDownloader creates a new downloader. No client timeout is set; the
// transport defaults apply.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fetch downloads spec.URL to destPath, overwriting any existing file.
// Every failure is reported as a *DownloadError.
func (d *Downloader) Fetch(ctx context.Context, spec artifact.Spec, destPath string) error {
	if err := d.fetch(ctx, spec.URL, destPath); err != nil {
		return &DownloadError{URL: spec.URL, Path: destPath, Cause: err}
	}
	return nil
}

func (d *Downloader) fetch(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	tmpPath := destPath + partSuffix
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	pw := &progressWriter{
		progress: Progress{Total: resp.ContentLength},
		report:   d.report,
	}
	if _, err := io.Copy(io.MultiWriter(tmpFile, pw), resp.Body); err != nil {
		return fmt.Errorf("copy response body: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	cleanupNeeded = false
	return nil
}

// report forwards progress to the callback, swallowing any panic so that
// progress reporting can never abort a download.
func (d *Downloader) report(p Progress) {
	if d.progress == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	d.progress(p)
}

// progressWriter counts bytes flowing through io.Copy.
type progressWriter struct {
	progress Progress
	report   func(Progress)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.progress.Downloaded += int64(len(p))
	w.report(w.progress)
	return len(p), nil
}
