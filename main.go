package main

import (
	"os"

	"github.com/benjilabs/creditline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
