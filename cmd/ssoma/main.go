package main

import (
	"os"

	"ssoma/cmd/ssoma/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
