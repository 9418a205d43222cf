package main

import (
	"os"

	"github.com/hassan/cleanworld/cmd/cleanworld/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
