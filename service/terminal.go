package service

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractiveEnvironment reports whether stderr is a terminal a human is
// watching. CI systems get plain output even when they allocate a pty.
func IsInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
