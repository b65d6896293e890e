// Command rgodd generates random fault-labelled automata, checks their
// diagnosability and inspects saved configurations.
package main

import (
	"os"

	"github.com/katalvlaran/rgodd/cmd/rgodd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
