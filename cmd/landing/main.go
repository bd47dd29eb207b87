package main

import (
	"os"

	"github.com/dmitrymomot/landing/cmd/landing/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
