package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/wincross/wincross/cmd/wincross"
	"github.com/wincross/wincross/internal/version"
)

func main() {
	rootCmd := wincross.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "WINCROSS",
		Section: "1",
		Source:  "wincross " + version.Version,
		Manual:  "wincross manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
