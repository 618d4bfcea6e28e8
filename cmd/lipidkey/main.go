// LipidKey - lipid residue extraction tool
package main

import (
	"fmt"
	"os"

	"github.com/lipidkey/lipidkey/cmd/lipidkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
