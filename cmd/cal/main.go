package main

import (
	"os"
	"time"

	"monthcal/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}
