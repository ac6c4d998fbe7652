package main

import (
	"checkerboard/src/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunCheckerboard(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
