//go:build xpath_strict

package validation

// DefaultStrict is the build-time strictness.
const DefaultStrict = true
