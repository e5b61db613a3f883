package main

import (
	"os"

	"github.com/arloliu/hamming84/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
