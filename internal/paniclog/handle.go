// Package paniclog turns panics into errors, logging the stack trace of
// the panic to an io.Writer.
package paniclog

import (
	"fmt"
	"io"
	"runtime/debug"

	"go.uber.org/multierr"
)

// Handle writes a recovered panic value and the current stack to w, and
// returns the panic as an error. Panics with error values wrap that error.
// Handle returns nil if pval is nil.
func Handle(pval any, w io.Writer) error {
	if pval == nil {
		return nil
	}

	fmt.Fprintf(w, "panic: %v\n%s", pval, debug.Stack())

	if err, ok := pval.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", pval)
}

// Recover recovers from a panic and adds it to the error at the given
// pointer. It must be called directly with defer.
//
//	defer paniclog.Recover(&err, os.Stderr)
func Recover(err *error, w io.Writer) {
	if pval := recover(); pval != nil {
		*err = multierr.Append(*err, Handle(pval, w))
	}
}
