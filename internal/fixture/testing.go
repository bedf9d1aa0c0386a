package fixture

import "testing"

// NewForTest returns a Helper rooted in tb.TempDir().
// If opts enable cleanup tracking, Cleanup runs when the test finishes.
func NewForTest(tb testing.TB, opts ...Option) *Helper {
	tb.Helper()

	h := New(append([]Option{WithRoot(tb.TempDir())}, opts...)...)
	if h.cleanup {
		tb.Cleanup(func() {
			if err := h.Cleanup(); err != nil {
				tb.Errorf("cleaning up fixtures: %v", err)
			}
		})
	}
	return h
}
