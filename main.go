package main

import (
	"os"

	"github.com/tsellier/cpctrain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
