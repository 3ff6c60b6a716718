package main

import (
	"os"

	"github.com/andywolf/grimoire/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
