// Command packlist calculates packing lists and renders proforma workbooks from
// local order files.
package main

import (
	"os"

	"github.com/guttosm/packlist-service/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
