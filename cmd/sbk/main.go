// Command sbk is a thin demonstration front-end over the SBK core:
// it creates and recovers threshold-shared wallet seed material from
// the command line. It is not itself part of the cryptographic core.
package main

import (
	"os"

	"github.com/sbk-go/sbk/internal/cli"
)

//nolint:gochecknoglobals // set at build time via -ldflags
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.GitCommit = gitCommit
	cli.BuildDate = buildDate

	err := cli.Execute()
	os.Exit(cli.ExitCode(err))
}
