package main

import (
	"os"

	"github.com/kmoser/dotsync/cmd/dotsync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
