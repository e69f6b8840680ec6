// Package config loads fcyup's runtime settings and the list of projects
// to bootstrap.
//
// # Settings
//
// Settings come from command-line flags, FCYUP_* environment variables and
// built-in defaults, in that order of precedence, resolved through viper:
//
//	home          FCYUP_HOME          user home directory
//	api_url       FCYUP_API_URL       https://api.github.com
//	download_url  FCYUP_DOWNLOAD_URL  https://github.com
//	download_dir  FCYUP_DOWNLOAD_DIR  current working directory
//	manifest      FCYUP_MANIFEST      "" (built-in project list)
//	os, arch      FCYUP_OS, FCYUP_ARCH  override the detected platform
//	verbose       FCYUP_VERBOSE       false
//
// A GitHub token is read from FCYUP_GITHUB_TOKEN or GITHUB_TOKEN.
//
// # Manifest
//
// A manifest is a Lua file evaluated in a sandboxed gopher-lua VM with a
// read-only platform table available:
//
//	fcyup = {
//	  projects = {
//	    "Freemorger/voxvm",
//	    { owner = "The-Fency-Project", repo = "fencyc" },
//	    platform.when(platform.is_linux, "someone/linux-only"),
//	  },
//	}
//
// Entries are taken in array order. Nil entries are skipped so platform
// conditionals can drop a project.
//
// # Sandboxing
//
// The VM has no os, io, debug or module loading functions. The string,
// table and math libraries stay available.
package config
