package main

import (
	"os"

	"github.com/driftdev/drift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
