package main

import (
	"os"

	"github.com/hephbuild/hperm/internal/cmd"
)

func main() {
	code := cmd.Execute()

	os.Exit(code)
}
