// filepath: cmd/miocouple/main.go
package main

import (
	"miocouple/internal/cli"
)

// @title Mio Couple API
// @version 1.0.0
// @description Backend API for the Mio Couple web app: memory photos, feedback board, couple goals and love messages.
// @BasePath /api
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
