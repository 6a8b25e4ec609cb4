package paths

import (
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// LexicallyNormalize drops "." segments and resolves ".." against the
// literal segment before it. It never looks at the filesystem, so a ".."
// following a symlink is resolved as if the link were a plain directory.
//
// A ".." with nothing left to cancel fails with CANNOT_NORMALIZE, both for
// relative paths (the base is unknown) and for absolute paths (it would
// climb above the root). A relative path that cancels out entirely becomes
// ".".
func LexicallyNormalize(p RawPath) (RawPath, error) {
	out := make([]string, 0, len(p.segments))
	for _, s := range p.segments {
		switch s {
		case CurDir:
			continue
		case ParentDir:
			if len(out) == 0 {
				return RawPath{}, errors.New(errors.ErrCannotNormalize, "'..' escapes the known segments").
					WithPath(p.String())
			}
			out = out[:len(out)-1]
		default:
			out = append(out, s)
		}
	}
	if !p.root.IsAbs() && len(out) == 0 {
		out = append(out, CurDir)
	}
	return RawPath{root: p.root, segments: out}, nil
}

// RelativeTo computes the shortest relative path leading from base to
// target: the segments they share are dropped, every remaining segment of
// base becomes "..", and the rest of target follows. Equal paths give ".".
//
// Both paths must be absolute with the same root under profile, and the
// unshared part of base must be free of "." and "..", since stepping back
// over those cannot be done lexically. Anything else is NOT_UNDER_BASE.
func RelativeTo(target, base RawPath, profile platform.Profile) (RawPath, error) {
	notUnder := func(reason string) error {
		return errors.New(errors.ErrNotUnderBase, reason).
			WithPath(target.String()).
			WithDetail("base", base.String())
	}

	if !target.IsAbs() || !base.IsAbs() {
		return RawPath{}, notUnder("both paths must be absolute")
	}
	if compareRoot(target.root, base.root, profile) != 0 {
		return RawPath{}, notUnder("paths have different roots")
	}

	common := 0
	for common < len(target.segments) && common < len(base.segments) &&
		profile.Compare(target.segments[common], base.segments[common]) == 0 {
		common++
	}

	rest := base.segments[common:]
	out := make([]string, 0, len(rest)+len(target.segments)-common)
	for _, s := range rest {
		if s == CurDir || s == ParentDir {
			return RawPath{}, notUnder("base is not lexically reachable")
		}
		out = append(out, ParentDir)
	}
	out = append(out, target.segments[common:]...)
	if len(out) == 0 {
		out = append(out, CurDir)
	}
	return RawPath{root: platform.NoRoot(), segments: out}, nil
}
