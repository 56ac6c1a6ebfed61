package main

import (
	"os"

	"github.com/noah-isme/vegshop/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
