package main

import (
	"os"

	"github.com/pnaconstructions/pnasite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
