// Package shell makes the managed install directory reachable from the
// user's shell by adding it to PATH in a shell profile.
//
// # Profile Selection
//
// The first existing file among these, under the home directory, is used:
//   - .zshrc
//   - .bashrc
//   - .profile
//
// No profile is ever created. When none exists the caller is told to add
// the directory by hand.
//
// # Modification
//
// The line
//
//	export PATH="<installDir>:$PATH"
//
// is prepended to the profile unless that exact line already appears in it.
// The check is a literal substring match: an equivalent entry written with
// different quoting, spacing or a trailing slash is not recognized, and the
// line will be added again. The profile is rewritten through a temporary
// file in the same directory and a rename. Its file mode is preserved.
// A symlinked profile is resolved first so the link itself survives.
//
// # Windows
//
// On Windows nothing is written; the caller is told to add the directory
// to PATH manually.
package shell
