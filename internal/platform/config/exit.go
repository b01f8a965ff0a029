package config

import (
	"fmt"
	"os"
)

// Exitf reports a fatal startup problem on stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "toolbox: "+format+"\n", args...)
	os.Exit(1)
}
