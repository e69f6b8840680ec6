package shell

// ProfileCandidates are the shell profiles considered, in priority order,
// relative to the home directory.
var ProfileCandidates = []string{".zshrc", ".bashrc", ".profile"}

// tmpPattern names temporary files created next to a profile while rewriting it.
const tmpPattern = ".fcyup-tmp-*"
