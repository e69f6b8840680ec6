// Package artifact builds release artifact filenames and download URLs.
package artifact

import (
	"fmt"
	"strings"

	"github.com/The-Fency-Project/fcyup/internal/platform"
)

// DefaultHost is the release download root.
const DefaultHost = "https://github.com"

const separators = `/\`

// Spec identifies one downloadable release artifact.
type Spec struct {
	Filename string
	URL      string
	// ShortName is the installed executable name: the first
	// hyphen-delimited segment of Filename.
	ShortName string
}

// Build returns the artifact for owner/repo at tag on the given platform.
//
// Filename pattern: {repo}-{tag}-{os}-{arch}, with os and arch lower-cased.
// URL pattern: {host}/{owner}/{repo}/releases/download/{tag}/{filename}.
// owner, repo and tag are used verbatim. The filename must be a single path
// element, so a tag or repo containing a path separator is rejected.
func Build(host, owner, repo, tag string, info *platform.Info) (Spec, error) {
	if info == nil {
		return Spec{}, fmt.Errorf("platform info is required")
	}
	if tag == "" || strings.ContainsAny(tag, separators) {
		return Spec{}, fmt.Errorf("release tag %q cannot be used in an artifact filename", tag)
	}
	if strings.ContainsAny(repo, separators) {
		return Spec{}, fmt.Errorf("repository name %q cannot be used in an artifact filename", repo)
	}
	if host == "" {
		host = DefaultHost
	}

	filename := fmt.Sprintf("%s-%s-%s-%s", repo, tag, strings.ToLower(info.OS), strings.ToLower(info.Arch))
	baseURL := fmt.Sprintf("%s/%s/%s/releases/download/%s", strings.TrimRight(host, "/"), owner, repo, tag)

	shortName, _, _ := strings.Cut(filename, "-")
	if shortName == "" {
		return Spec{}, fmt.Errorf("artifact %q does not start with an executable name", filename)
	}

	return Spec{
		Filename:  filename,
		URL:       fmt.Sprintf("%s/%s", baseURL, filename),
		ShortName: shortName,
	}, nil
}
