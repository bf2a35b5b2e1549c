package main

import (
	"os"

	"github.com/goicu/icumsg/cmd/icumsg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
