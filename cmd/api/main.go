package main

import (
	"os"

	"license-management/cmd/api/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
