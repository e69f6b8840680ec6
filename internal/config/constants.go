package config

// Lua schema field names and globals
const (
	luaGlobalFcyup   = "fcyup"
	luaFieldProjects = "projects"
	luaFieldOwner    = "owner"
	luaFieldRepo     = "repo"
)

const (
	// MaxProjectCount bounds the number of projects a manifest may declare
	MaxProjectCount = 64

	// MaxManifestSize is the largest manifest file accepted, in bytes
	MaxManifestSize = 1 << 20
)

// EnvPrefix is prepended to setting names to form environment variable names.
const EnvPrefix = "FCYUP"

// Setting keys
const (
	KeyHome        = "home"
	KeyAPIURL      = "api_url"
	KeyDownloadURL = "download_url"
	KeyDownloadDir = "download_dir"
	KeyManifest    = "manifest"
	KeyGitHubToken = "github_token"
	KeyOS          = "os"
	KeyArch        = "arch"
	KeyVerbose     = "verbose"
)
