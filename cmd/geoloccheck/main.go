package main

import (
	"os"

	"github.com/tqwhitetech/geoloc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
