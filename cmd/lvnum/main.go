// SPDX-License-Identifier: MIT

// Command lvnum runs dense linear-algebra operations on matrix documents.
package main

import (
	"os"

	"github.com/katalvlaran/lvnum/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
