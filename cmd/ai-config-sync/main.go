package main

import (
	"os"

	"github.com/bianoble/ai-config-sync/cmd/ai-config-sync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
