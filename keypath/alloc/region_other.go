//go:build !unix

package alloc

// mapRegion falls back to an ordinary heap allocation on platforms without
// anonymous-mmap support. Close becomes a no-op.
func mapRegion(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}
