package main

import (
	"os"

	"github.com/prefrontal-labs/mindly-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
