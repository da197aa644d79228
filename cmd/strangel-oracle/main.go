package main

import (
	"os"

	"github.com/BradWyatt-code/strangel-oracle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
