package main

import (
	"os"

	"github.com/thinkle/deep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
