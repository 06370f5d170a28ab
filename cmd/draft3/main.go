// Command draft3 checks, validates against, and converts the accounting
// API's draft-03 schema documents.
package main

import (
	"errors"
	"os"
)

func main() {
	err := execRootCmd(os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, errNonConformant):
		// a negative validation result, not a failure of the tool
		os.Exit(2)
	default:
		os.Exit(1)
	}
}
