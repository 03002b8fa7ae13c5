// Command jsklve is the CLI front-end for the js:klve tracer.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/jsklve/cmd/jsklve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
