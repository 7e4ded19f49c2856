package main

import (
	"os"

	"github.com/taskroll-cli/taskroll/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
