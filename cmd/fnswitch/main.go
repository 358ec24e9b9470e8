// Command fnswitch is a small CLI around the property-function dispatcher,
// useful for poking at the frozen tables and exercising a single call
// without writing a Go program.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/fnswitch/cmd/fnswitch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
