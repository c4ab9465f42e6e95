package main

import (
	"io"

	"github.com/bankiru/PHP-CS-Fixer/internal/observ"
)

// printTimings writes the phase table; write errors on stderr are ignored.
func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	_, _ = io.WriteString(out, timer.Summary())
}
