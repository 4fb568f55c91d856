// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/lvroot/cmd/rootfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
