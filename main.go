// Package main is the entry point for the mockprep CLI.
package main

import "gooze.dev/pkg/mockprep/cmd"

func main() {
	cmd.Execute()
}
