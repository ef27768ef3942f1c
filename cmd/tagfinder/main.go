package main

import (
	"os"

	"tagfinder/cmd/tagfinder/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
