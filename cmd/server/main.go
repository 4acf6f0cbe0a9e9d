package main

import (
	"os"

	"github.com/dfwhvac/cmd/server/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
