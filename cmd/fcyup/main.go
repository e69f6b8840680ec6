// Command fcyup installs the latest Fency toolchain release into
// ~/.fency/bin and adds that directory to PATH.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:")+" "+err.Error())
		os.Exit(1)
	}
}
