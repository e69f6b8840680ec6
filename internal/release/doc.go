// Package release resolves the latest published release of a GitHub project.
//
// Only the "latest" release endpoint is queried and only its tag_name is
// used. There is no caching and no retry: a failed lookup is returned as a
// *ResolutionError and the caller aborts before anything is downloaded.
//
// # Authentication
//
// Unauthenticated requests are limited to 60 per hour by GitHub. When a
// token is configured (FCYUP_GITHUB_TOKEN or GITHUB_TOKEN) it is sent as a
// bearer token, but only to the configured API host.
package release
