package main

import (
	"os"

	"nikand.dev/go/cli"

	"nikand.dev/go/strcat/cmd/strcat/strcatcmd"
)

func main() {
	cli.RunAndExit(strcatcmd.App(), os.Args, os.Environ())
}
