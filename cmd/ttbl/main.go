package main

import (
	"os"

	"ttbl/cmd/ttbl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
