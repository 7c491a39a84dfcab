package main

import (
	"os"

	"github.com/yoanbernabeu/chronos/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
