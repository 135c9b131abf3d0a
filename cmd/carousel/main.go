// Command carousel shows a folder of photos as a self-animating stack of
// cards, and carries the manifest and theme helpers.
package main

import (
	"log/slog"
	"os"
	"runtime"
)

// GLFW must run on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("carousel failed", "error", err)
		os.Exit(1)
	}
}
