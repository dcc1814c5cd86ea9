// Package stub replaces package-level values in tests.
package stub

import "testing"

// Value sets *dst to val until the end of the test. Tests that use it
// must not run in parallel with others reading *dst.
func Value[V any](t testing.TB, dst *V, val V) {
	old := *dst
	*dst = val
	t.Cleanup(func() { *dst = old })
}
