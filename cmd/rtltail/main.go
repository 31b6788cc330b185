// Rtltail converts calls in tail position of RTL programs into tail calls
// and checks that the result behaves like the original.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		// Flag and argument errors come before the logger exists.
		if logger == nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
