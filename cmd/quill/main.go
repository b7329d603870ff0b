// Command quill is the CLI for quill's thread-local subsystem.
package main

import (
	"fmt"
	"os"

	"github.com/quillvm/quill/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
