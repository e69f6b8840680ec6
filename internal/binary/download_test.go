package binary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/The-Fency-Project/fcyup/internal/artifact"
)

func specFor(url string) artifact.Spec {
	return artifact.Spec{Filename: filepath.Base(url), URL: url}
}

func TestDownloaderFetch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    bool
	}{
		{
			name:       "successful_download",
			statusCode: http.StatusOK,
			body:       "test binary content",
			wantErr:    false,
		},
		{
			name:       "404_not_found",
			statusCode: http.StatusNotFound,
			body:       "not found",
			wantErr:    true,
		},
		{
			name:       "500_server_error",
			statusCode: http.StatusInternalServerError,
			body:       "server error",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("User-Agent") != DefaultUserAgent {
					t.Errorf("unexpected User-Agent: %s", r.Header.Get("User-Agent"))
				}

				w.WriteHeader(tt.statusCode)
				if _, err := w.Write([]byte(tt.body)); err != nil {
					t.Errorf("failed to write response: %v", err)
				}
			}))
			defer server.Close()

			tmpDir := t.TempDir()
			downloader := NewDownloader()

			destPath := filepath.Join(tmpDir, "widget-v1.2.0-linux-x86_64")
			err := downloader.Fetch(context.Background(), specFor(server.URL+"/widget-v1.2.0-linux-x86_64"), destPath)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				var dlErr *DownloadError
				if !errors.As(err, &dlErr) {
					t.Fatalf("expected *DownloadError, got %T", err)
				}
				if _, statErr := os.Stat(destPath); !os.IsNotExist(statErr) {
					t.Error("destination should not exist after failed download")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			content, err := os.ReadFile(destPath)
			if err != nil {
				t.Fatalf("failed to read downloaded file: %v", err)
			}

			if string(content) != tt.body {
				t.Errorf("content mismatch:\ngot:  %q\nwant: %q", string(content), tt.body)
			}

			if _, err := os.Stat(destPath + partSuffix); !os.IsNotExist(err) {
				t.Error("partial file should be renamed away after success")
			}
		})
	}
}

func TestDownloaderFetchOverwritesExisting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("new"))
	}))
	defer server.Close()

	destPath := filepath.Join(t.TempDir(), "artifact")
	if err := os.WriteFile(destPath, []byte("old content that is longer"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := NewDownloader().Fetch(context.Background(), specFor(server.URL+"/artifact"), destPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, _ := os.ReadFile(destPath)
	if string(content) != "new" {
		t.Errorf("content = %q, want %q", string(content), "new")
	}
}

func TestDownloaderContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("too late"))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	destPath := filepath.Join(t.TempDir(), "test-file")
	err := NewDownloader().Fetch(ctx, specFor(server.URL+"/test-file"), destPath)

	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded in chain, got: %v", err)
	}
}

func TestDownloaderCreatesNestedDirectories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("test"))
	}))
	defer server.Close()

	deepPath := filepath.Join(t.TempDir(), "a", "b", "c", "file")
	if err := NewDownloader().Fetch(context.Background(), specFor(server.URL+"/file"), deepPath); err != nil {
		t.Fatalf("download failed: %v", err)
	}

	if _, err := os.Stat(deepPath); err != nil {
		t.Errorf("file was not created in nested directory: %v", err)
	}
}

func TestDownloaderRedirectHandling(t *testing.T) {
	redirectCount := 0
	finalContent := "final content after redirects"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if redirectCount < 3 {
			redirectCount++
			http.Redirect(w, r, fmt.Sprintf("/redirect-%d", redirectCount), http.StatusFound)
			return
		}
		_, _ = w.Write([]byte(finalContent))
	}))
	defer server.Close()

	destPath := filepath.Join(t.TempDir(), "redirected-file")
	if err := NewDownloader().Fetch(context.Background(), specFor(server.URL+"/start"), destPath); err != nil {
		t.Fatalf("download with redirects failed: %v", err)
	}

	content, _ := os.ReadFile(destPath)
	if string(content) != finalContent {
		t.Errorf("unexpected content after redirects: %s", string(content))
	}
	if redirectCount != 3 {
		t.Errorf("expected 3 redirects, got %d", redirectCount)
	}
}

func TestDownloaderProgress(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 100*1024)

	tests := []struct {
		name          string
		contentLength bool
		wantTotal     int64
	}{
		{"content_length_known", true, int64(len(payload))},
		{"content_length_unknown", false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.contentLength {
					w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
				} else {
					// Flushing before the body forces chunked encoding.
					w.WriteHeader(http.StatusOK)
					w.(http.Flusher).Flush()
				}
				_, _ = w.Write(payload)
			}))
			defer server.Close()

			var reports []Progress
			downloader := NewDownloader(WithProgress(func(p Progress) {
				reports = append(reports, p)
			}))

			destPath := filepath.Join(t.TempDir(), "artifact")
			if err := downloader.Fetch(context.Background(), specFor(server.URL+"/artifact"), destPath); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(reports) == 0 {
				t.Fatal("expected at least one progress report")
			}

			var prev int64
			for _, p := range reports {
				if p.Total != tt.wantTotal {
					t.Errorf("Total = %d, want %d", p.Total, tt.wantTotal)
				}
				if p.Downloaded < prev {
					t.Errorf("progress went backwards: %d after %d", p.Downloaded, prev)
				}
				prev = p.Downloaded
			}

			last := reports[len(reports)-1]
			if last.Downloaded != int64(len(payload)) {
				t.Errorf("final Downloaded = %d, want %d", last.Downloaded, len(payload))
			}
		})
	}
}

func TestDownloaderProgressPanicDoesNotFailDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer server.Close()

	downloader := NewDownloader(WithProgress(func(Progress) {
		panic("reporter exploded")
	}))

	destPath := filepath.Join(t.TempDir(), "artifact")
	if err := downloader.Fetch(context.Background(), specFor(server.URL+"/artifact"), destPath); err != nil {
		t.Fatalf("progress panic should not fail the download: %v", err)
	}

	content, _ := os.ReadFile(destPath)
	if !strings.EqualFold(string(content), "payload") {
		t.Errorf("content = %q, want %q", string(content), "payload")
	}
}
