// Command compoundword finds the longest word in a word list that is made
// of other words from the same list.
package main

import (
	"os"

	"github.com/Iron-Ham/compoundword/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
