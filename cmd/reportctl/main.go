// Package main provides the entry point for the reportctl CLI.
package main

import (
	"donation-report-srv/internal/cli"
)

func main() {
	cli.Execute()
}
