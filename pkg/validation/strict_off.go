//go:build !xpath_strict

package validation

// DefaultStrict is the build-time strictness. Build with -tags xpath_strict
// to turn it on.
const DefaultStrict = false
