package main

import (
	"os"

	"github.com/mkprof/makelint/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
