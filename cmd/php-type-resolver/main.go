// Package main provides the CLI entrypoint for php-type-resolver.
//
// php-type-resolver determines the effective types of PHP declarations:
//   - Reads declarations, doc comments and use statements from YAML fixtures
//   - Lets doc comment types override native types
//   - Resolves short names through imports and the current namespace
//   - Reports resolved types and the class relationships they imply
package main

import (
	"fmt"
	"os"

	"php-class-diagram/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
