package main

import (
	"os"

	"github.com/whalelephant/go-ucan-keys/cmd/ucan-keys/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
