package main

import (
	"fmt"
	"os"

	"github.com/signatory-io/keyinfo/commands/keyinfo"
)

func main() {
	cmd := keyinfo.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
