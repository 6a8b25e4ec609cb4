package paths

import (
	"github.com/gobwas/glob"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// Match reports whether p matches a glob pattern. The pattern is written
// with "/" separators on every profile and matched against p.String(), so
// "*" stops at a separator and "**" crosses them. On case-insensitive
// profiles both sides are folded first.
func Match(p RawPath, pattern string, profile platform.Profile) (bool, error) {
	subject := p.String()
	if !profile.CaseSensitive() {
		pattern = profile.Fold(pattern)
		subject = profile.Fold(subject)
	}
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrInvalidInput, "invalid pattern %q", pattern)
	}
	return g.Match(subject), nil
}
