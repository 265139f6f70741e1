package main

import (
	"os"

	"github.com/nukata/schemer/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args[1:]))
}
