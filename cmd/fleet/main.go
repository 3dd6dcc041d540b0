package main

import (
	"fmt"
	"os"

	"github.com/example/fleet/internal/cli"
)

func main() {
	rootCmd := cli.RootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
