// Command conlog writes one styled log line, the way a program using
// the logger package would.
//
// Usage:
//
//	conlog [flags] MESSAGE...
//	conlog styles
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
