package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
