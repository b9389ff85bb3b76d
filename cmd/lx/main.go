// Package main is the entry point for the lx CLI tool.
package main

import (
	"github.com/hargabyte/lx/internal/cmd"
)

func main() {
	cmd.Execute()
}
