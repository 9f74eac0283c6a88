package main

import (
	"os"

	"homeprice/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
