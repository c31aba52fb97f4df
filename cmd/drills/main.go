// SPDX-License-Identifier: MIT

// Command drills runs the exercises of this module from the command line.
//
//	drills twosum --target 9 2 7 11 15
//	drills stats 1 2 3 4 5 6 6 6 7 8
//	echo "here is an example" | drills firstword
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
