package main

import (
	"os"

	"github.com/eringen/convcalc/cmd/convcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
