// Package main provides the headless CLI for managing the widget layout and
// rendering charts without the desktop app.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
