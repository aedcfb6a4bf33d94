package main

import (
	"os"

	"github.com/athanorlabs/go-cryptonote/cmd/cryptonote/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
