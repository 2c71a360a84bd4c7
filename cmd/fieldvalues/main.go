// Package main provides the CLI entrypoint for fieldvalues.
//
// fieldvalues exercises the assertkit libraries from the command line:
//   - extract: reads a YAML or JSON list of objects and prints the value of a
//     dotted field path for each of them
//   - once: checks that a substring appears exactly once in a text and prints
//     the assertion failure message otherwise
package main

import "os"

func main() {
	os.Exit(Execute())
}
