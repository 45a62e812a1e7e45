// polycalc is the command-line shell around the poly package.
package main

import (
	"os"

	"github.com/katalvlaran/lvpoly/cmd/polycalc/cli"
)

func main() {
	if err := cli.Main.Execute(); err != nil {
		os.Exit(1)
	}
}
