// Command logplan compiles a method catalog into log plans and explains or
// checks them.
//
//	logplan explain --catalog catalog.yaml [identity...]
//	logplan check --config logkit.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
