// internal/recovery/recovery.go
// Package recovery turns panics and unrecoverable startup errors into a
// diagnostic on stderr and a non-zero exit.
package recovery

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// ExitCode is the process exit status used for fatal conditions.
const ExitCode = 1

// HandlePanic should be deferred at the top of main().
// It reports the panic with a stack trace and exits with ExitCode.
func HandlePanic() {
	if r := recover(); r != nil {
		writePanic(os.Stderr, r, debug.Stack())
		os.Exit(ExitCode)
	}
}

// Fatal reports err and exits with ExitCode. Used for errors the program
// cannot run without handling, such as an unusable translation tree.
func Fatal(err error) {
	writeFatal(os.Stderr, err)
	os.Exit(ExitCode)
}

func writePanic(w io.Writer, r any, stack []byte) {
	_, _ = fmt.Fprintf(w, "FATAL: %v\n\nStack trace:\n%s\n", r, stack)
}

func writeFatal(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "FATAL: %v\n", err)
}
