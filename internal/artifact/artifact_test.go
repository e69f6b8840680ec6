package artifact

import (
	"strings"
	"testing"

	"github.com/The-Fency-Project/fcyup/internal/platform"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		owner        string
		repo         string
		tag          string
		info         *platform.Info
		wantFilename string
		wantURL      string
	}{
		{
			name:         "macos_aarch64",
			owner:        "acme",
			repo:         "widget",
			tag:          "v1.2.0",
			info:         &platform.Info{OS: "macos", Arch: "aarch64"},
			wantFilename: "widget-v1.2.0-macos-aarch64",
			wantURL:      "https://github.com/acme/widget/releases/download/v1.2.0/widget-v1.2.0-macos-aarch64",
		},
		{
			name:         "linux_x86_64_default_project",
			owner:        "Freemorger",
			repo:         "voxvm",
			tag:          "v0.1.0",
			info:         platform.New("Linux", "x86_64"),
			wantFilename: "voxvm-v0.1.0-linux-x86_64",
			wantURL:      "https://github.com/Freemorger/voxvm/releases/download/v0.1.0/voxvm-v0.1.0-linux-x86_64",
		},
		{
			name:         "os_arch_lowercased_owner_repo_tag_verbatim",
			owner:        "The-Fency-Project",
			repo:         "FencyC",
			tag:          "V2.0.0-RC1",
			info:         &platform.Info{OS: "Windows", Arch: "X86_64"},
			wantFilename: "FencyC-V2.0.0-RC1-windows-x86_64",
			wantURL:      "https://github.com/The-Fency-Project/FencyC/releases/download/V2.0.0-RC1/FencyC-V2.0.0-RC1-windows-x86_64",
		},
		{
			name:         "custom_host_trailing_slash",
			host:         "http://127.0.0.1:8080/",
			owner:        "acme",
			repo:         "widget",
			tag:          "v1",
			info:         &platform.Info{OS: "linux", Arch: "riscv64"},
			wantFilename: "widget-v1-linux-riscv64",
			wantURL:      "http://127.0.0.1:8080/acme/widget/releases/download/v1/widget-v1-linux-riscv64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.host, tt.owner, tt.repo, tt.tag, tt.info)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Filename != tt.wantFilename {
				t.Errorf("Filename = %q, want %q", got.Filename, tt.wantFilename)
			}
			if want, _, _ := strings.Cut(tt.wantFilename, "-"); got.ShortName != want {
				t.Errorf("ShortName = %q, want %q", got.ShortName, want)
			}
			if got.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", got.URL, tt.wantURL)
			}
			if !strings.HasSuffix(got.URL, "/releases/download/"+tt.tag+"/"+got.Filename) {
				t.Errorf("URL %q does not end in the release download path", got.URL)
			}
		})
	}
}

func TestBuild_NilPlatform(t *testing.T) {
	if _, err := Build("", "acme", "widget", "v1", nil); err == nil {
		t.Error("expected error for nil platform info")
	}
}

func TestBuild_RejectsPathLikeNames(t *testing.T) {
	info := &platform.Info{OS: "linux", Arch: "x86_64"}
	tests := []struct {
		name string
		repo string
		tag  string
	}{
		{name: "slashed_tag", repo: "fencyc", tag: "release/1.0"},
		{name: "backslashed_tag", repo: "fencyc", tag: `release\1.0`},
		{name: "parent_tag", repo: "fencyc", tag: "../v1"},
		{name: "empty_tag", repo: "fencyc", tag: ""},
		{name: "slashed_repo", repo: "a/b", tag: "v1"},
		{name: "leading_hyphen_repo", repo: "-fencyc", tag: "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := Build("", "The-Fency-Project", tt.repo, tt.tag, info); err == nil {
				t.Errorf("Build() = %+v, want error", got)
			}
		})
	}
}
