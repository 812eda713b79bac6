package main

import (
	"os"

	"github.com/katalvlaran/priyam/cmd/priyam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
