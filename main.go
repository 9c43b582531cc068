package main

import (
	"os"

	"github.com/conneroisu/containers/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
