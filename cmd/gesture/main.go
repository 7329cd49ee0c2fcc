// Command gesture runs gesture scenarios, serves a recognizer over WebSocket
// and recognizes mouse gestures in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/gesture/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
