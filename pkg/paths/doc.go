// Package paths is the untyped path layer.
//
// A RawPath is a Root plus an ordered list of segments. It is produced by
// Parse under a platform.Profile and turned back into a string by Render
// under the same or another profile. RawPath values are immutable: every
// operation returns a new value and accessors hand out copies.
//
// Segments are never empty and never contain a separator or a null byte.
// "." and ".." are ordinary segments here; they are only resolved when the
// caller asks for it through LexicallyNormalize, which never consults the
// filesystem.
//
// # Usage
//
//	import "github.com/arthur-debert/xpath/pkg/paths"
//
//	p, err := paths.Parse("/usr/local/bin", platform.NewPosix())
//	if err != nil {
//	    return err
//	}
//	p.Segments()                        // [usr local bin]
//	paths.Render(p, platform.NewPosix()) // /usr/local/bin
//
//	rel, err := paths.Parse("../share", platform.NewPosix())
//	joined, err := paths.Join(p, rel)    // /usr/local/bin/../share
//	norm, err := paths.LexicallyNormalize(joined) // /usr/local/share
//
// The package also carries the shell-flavoured helpers built on top of
// parsing: Expand (~, ., ${VAR} and %VAR%), Contract (home to ~),
// CheckPortable (Windows naming rules on any profile) and Match (globs).
package paths
