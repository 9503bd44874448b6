// filepath: cmd/focusboard/main.go
package main

import (
	"focusboard/internal/cli"
)

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
