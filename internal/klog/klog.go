// Package klog provides environment-gated debug logging shared across the
// kernel's packages. Logging only fires when KERNEL_DEBUG=1 is set, so its
// callers (the sparse echelon and nttbridge) never pay for formatting in
// normal runs.
package klog

import (
	"fmt"
	"io"
	"os"
)

var enabled = os.Getenv("KERNEL_DEBUG") == "1"

// Enabled reports whether debug logging is turned on for this process.
func Enabled() bool { return enabled }

// Printf writes a formatted debug line to stderr when logging is enabled.
func Printf(format string, args ...any) {
	if enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Fprintf writes a formatted debug line to w when logging is enabled.
func Fprintf(w io.Writer, format string, args ...any) {
	if enabled {
		fmt.Fprintf(w, format, args...)
	}
}
