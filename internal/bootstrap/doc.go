// Package bootstrap installs the latest release of each configured project
// and puts the install directory on the user's PATH.
//
// For every project, in order: resolve the latest tag, build the artifact
// name for the detected platform, download it, move it into
// ~/.fency/bin/<name> and register that directory in a shell profile.
// The platform is detected once per run.
//
// The first failure aborts the run. The only exception is PATH
// registration: a *shell.RegistrationError becomes a warning, since the
// binary is already installed by then.
package bootstrap
