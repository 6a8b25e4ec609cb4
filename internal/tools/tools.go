//go:build tools

// Package tools pins the code generators used by go:generate directives so
// that go.mod records their versions.
package tools

import (
	_ "github.com/dmarkham/enumer"
)
