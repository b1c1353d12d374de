package main

import (
	"os"

	"github.com/zjrosen/embedtone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
