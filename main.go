package main

import (
	"os"

	"github.com/anand/fintype/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
