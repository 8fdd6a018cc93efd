package main

import (
	"os"

	"tricalc/cmd/tricalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
