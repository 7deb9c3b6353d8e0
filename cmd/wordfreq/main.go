package main

import (
	"os"

	"github.com/outofforest/wordtree/cmd/wordfreq/cmd"
)

func main() {
	root := cmd.NewRootCommand()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
