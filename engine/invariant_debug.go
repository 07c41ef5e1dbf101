//go:build debug

package engine

// reportInvariant fails fast in debug builds
func reportInvariant(err error) {
	panic(err)
}
