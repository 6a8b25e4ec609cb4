package oracle

import (
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// maxLinkHops bounds symlink chains, like the kernel's ELOOP limit.
const maxLinkHops = 40

// Facts is what an oracle observed about one path at one point in time.
type Facts struct {
	Exists bool
	IsFile bool
	IsDir  bool
	// Canonical is the symlink-free absolute form, when it could be computed.
	Canonical *paths.RawPath
}

// Oracle is the filesystem as seen by the validation layer.
type Oracle interface {
	// Profile is the platform the oracle's paths are parsed and rendered with.
	Profile() platform.Profile
	// Stat never fails; absent or unreadable paths report Exists == false.
	Stat(p paths.RawPath) Facts
	// Canonicalize resolves symlinks, "." and "..". It fails with NOT_FOUND
	// when a prefix of p does not exist.
	Canonicalize(p paths.RawPath) (paths.RawPath, error)
}

// node is what a single lookup found at one prefix.
type node int

const (
	nodeMissing node = iota
	nodeDir
	nodeFile
	nodeLink
)

// lookupFunc inspects one absolute, dot-free path without following a link
// in its last segment. For nodeLink it also returns the link target.
type lookupFunc func(p paths.RawPath) (node, string)

// walk resolves p one segment at a time, the way the kernel does: "." is
// skipped, ".." steps back (never above the root) and every symlink met on
// the way is replaced by its target. It returns the final path and the kind
// of the node it names.
func walk(p paths.RawPath, cwd *paths.RawPath, profile platform.Profile, lookup lookupFunc) (paths.RawPath, node, error) {
	if !p.IsAbs() {
		if cwd == nil {
			return paths.RawPath{}, nodeMissing, notFound(p, "relative path and no working directory")
		}
		joined, err := paths.Join(*cwd, p)
		if err != nil {
			return paths.RawPath{}, nodeMissing, err
		}
		p = joined
	}

	cur := p.RootPath()
	kind := nodeDir
	pending := p.Segments()
	hops := 0

	for len(pending) > 0 {
		seg := pending[0]
		pending = pending[1:]

		// a file has no children, not even "." or ".."
		if kind == nodeFile {
			return paths.RawPath{}, nodeMissing, notFound(cur, "not a directory")
		}

		switch seg {
		case paths.CurDir:
			continue
		case paths.ParentDir:
			if parent, ok := paths.Parent(cur); ok {
				cur = parent
			}
			kind = nodeDir
			continue
		}

		next, err := paths.Append(cur, profile, seg)
		if err != nil {
			return paths.RawPath{}, nodeMissing, err
		}

		found, target := lookup(next)
		switch found {
		case nodeMissing:
			return paths.RawPath{}, nodeMissing, notFound(next, "no such file or directory")
		case nodeLink:
			hops++
			if hops > maxLinkHops {
				return paths.RawPath{}, nodeMissing, notFound(next, "too many levels of symbolic links")
			}
			t, err := paths.Parse(target, profile)
			if err != nil {
				return paths.RawPath{}, nodeMissing, errors.Wrap(err, errors.ErrNotFound, "unreadable symlink target").
					WithPath(next.String())
			}
			if t.IsAbs() {
				cur = t.RootPath()
			}
			pending = append(t.Segments(), pending...)
			kind = nodeDir
		default:
			cur = next
			kind = found
		}
	}
	return cur, kind, nil
}

func notFound(p paths.RawPath, reason string) error {
	return errors.New(errors.ErrNotFound, reason).WithPath(p.String())
}

func factsFor(kind node, canonical paths.RawPath) Facts {
	c := canonical
	return Facts{
		Exists:    true,
		IsFile:    kind == nodeFile,
		IsDir:     kind == nodeDir,
		Canonical: &c,
	}
}
