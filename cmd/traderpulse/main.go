package main

import (
	"os"

	"github.com/rustyeddy/traderpulse/cmd/traderpulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
