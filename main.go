package main

import (
	"os"

	"github.com/abhisek/disciple/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
