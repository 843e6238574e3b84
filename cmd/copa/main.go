// cmd/copa/main.go
package main

import (
	cmd "github.com/mwiater/copa/internal/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// main starts the copa CLI application by delegating to the
// cobra root command defined in the cli package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.SetVersionInfo(version)
	cmd.Execute()
}
