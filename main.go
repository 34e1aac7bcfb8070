package main

import (
	"os"

	"github.com/shadmazumder/jsonscrub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
