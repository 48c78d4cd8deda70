package main

import (
	"os"

	"github.com/mkrishnan/storyfox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
