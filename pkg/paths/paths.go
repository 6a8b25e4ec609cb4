package paths

import (
	"strings"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/platform"
)

const (
	// CurDir is the segment naming the current directory.
	CurDir = "."
	// ParentDir is the segment naming the parent directory.
	ParentDir = ".."
)

// RawPath is a root plus segments, with no file/directory tag.
// The zero value is not a valid path; build one with Parse or New.
type RawPath struct {
	root     platform.Root
	segments []string
}

// Parse splits input under profile. Consecutive separators collapse and a
// trailing separator is not kept as a segment; use HasTrailingSeparator to
// recover that hint.
func Parse(input string, profile platform.Profile) (RawPath, error) {
	root, segments, err := profile.Split(input)
	if err != nil {
		return RawPath{}, err
	}
	if !root.IsAbs() && len(segments) == 0 {
		return RawPath{}, errors.New(errors.ErrMalformedPath, "relative path has no segments").WithPath(input)
	}
	return RawPath{root: root, segments: segments}, nil
}

// MustParse is like Parse but panics on error. Use it for literals only.
func MustParse(input string, profile platform.Profile) RawPath {
	p, err := Parse(input, profile)
	if err != nil {
		panic(err)
	}
	return p
}

// HasTrailingSeparator reports whether input ends with a separator accepted
// by profile.
func HasTrailingSeparator(input string, profile platform.Profile) bool {
	if input == "" {
		return false
	}
	r := rune(input[len(input)-1])
	return profile.IsSeparator(r)
}

// New builds a RawPath from parts, checking the root and every segment the
// way Parse would.
func New(profile platform.Profile, root platform.Root, segments ...string) (RawPath, error) {
	if err := profile.CheckRoot(root); err != nil {
		return RawPath{}, err
	}
	if !root.IsAbs() && len(segments) == 0 {
		return RawPath{}, errors.New(errors.ErrMalformedPath, "relative path has no segments")
	}
	for _, s := range segments {
		if err := profile.CheckSegment(s); err != nil {
			return RawPath{}, err
		}
	}
	p := RawPath{root: root, segments: clone(segments)}
	// A relative first segment can still read as a root once rendered.
	if _, err := Parse(Render(p, profile), profile); err != nil {
		return RawPath{}, err
	}
	return p, nil
}

// Root returns the root of p.
func (p RawPath) Root() platform.Root { return p.root }

// IsAbs reports whether p has a root.
func (p RawPath) IsAbs() bool { return p.root.IsAbs() }

// IsRoot reports whether p is a bare root with no segments.
func (p RawPath) IsRoot() bool { return p.root.IsAbs() && len(p.segments) == 0 }

// RootPath returns p cut down to its bare root. For a relative p it returns
// the zero RawPath.
func (p RawPath) RootPath() RawPath {
	if !p.root.IsAbs() {
		return RawPath{}
	}
	return RawPath{root: p.root}
}

// Len returns the number of segments.
func (p RawPath) Len() int { return len(p.segments) }

// Segments returns a copy of the segments.
func (p RawPath) Segments() []string { return clone(p.segments) }

// IsZero reports whether p is the zero value.
func (p RawPath) IsZero() bool { return !p.root.IsAbs() && len(p.segments) == 0 }

// String renders p with forward slashes, independent of any profile.
// It is meant for logs and error messages.
func (p RawPath) String() string {
	var prefix string
	switch p.root.Kind() {
	case platform.RootPosix:
		prefix = "/"
	case platform.RootDrive:
		prefix = string([]byte{p.root.Drive(), ':', '/'})
	case platform.RootUNC:
		prefix = "//" + p.root.Server() + "/" + p.root.Share() + "/"
	}
	return prefix + strings.Join(p.segments, "/")
}

// Render turns p into a native string for profile. Only a bare root keeps a
// trailing separator.
func Render(p RawPath, profile platform.Profile) string {
	return profile.JoinRoot(p.root) + strings.Join(p.segments, string(profile.Separator()))
}

// Join appends suffix to base. An absolute suffix is always refused.
func Join(base, suffix RawPath) (RawPath, error) {
	if suffix.IsAbs() {
		return RawPath{}, errors.New(errors.ErrInvalidJoin, "cannot join an absolute path").
			WithPath(suffix.String()).
			WithDetail("base", base.String())
	}
	segments := make([]string, 0, len(base.segments)+len(suffix.segments))
	segments = append(segments, base.segments...)
	segments = append(segments, suffix.segments...)
	return RawPath{root: base.root, segments: segments}, nil
}

// Append adds segments to p, checking each under profile.
func Append(p RawPath, profile platform.Profile, segments ...string) (RawPath, error) {
	for _, s := range segments {
		if err := profile.CheckSegment(s); err != nil {
			return RawPath{}, err
		}
	}
	out := make([]string, 0, len(p.segments)+len(segments))
	out = append(out, p.segments...)
	out = append(out, segments...)
	return RawPath{root: p.root, segments: out}, nil
}

// Parent returns the lexical parent of p. A bare root has no parent. When
// the last segment is "." or "..", the parent is spelled by appending "..".
func Parent(p RawPath) (RawPath, bool) {
	if p.IsRoot() {
		return RawPath{}, false
	}
	last := p.segments[len(p.segments)-1]
	if last == CurDir || last == ParentDir {
		return RawPath{root: p.root, segments: append(clone(p.segments), ParentDir)}, true
	}
	segments := clone(p.segments[:len(p.segments)-1])
	if !p.root.IsAbs() && len(segments) == 0 {
		segments = []string{CurDir}
	}
	return RawPath{root: p.root, segments: segments}, true
}

// Base returns the last segment, or "" for a bare root.
func Base(p RawPath) string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Ext returns the extension of the last segment including the dot, or "".
// A leading dot alone does not start an extension.
func Ext(p RawPath) string {
	name := Base(p)
	if name == CurDir || name == ParentDir {
		return ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i:]
}

// Equal reports whether a and b denote the same path under profile.
func Equal(a, b RawPath, profile platform.Profile) bool {
	return Compare(a, b, profile) == 0
}

// Compare orders paths by root, then segment by segment using the profile's
// segment comparison. A path sorts before its extensions.
func Compare(a, b RawPath, profile platform.Profile) int {
	if c := compareRoot(a.root, b.root, profile); c != 0 {
		return c
	}
	n := min(len(a.segments), len(b.segments))
	for i := 0; i < n; i++ {
		if c := profile.Compare(a.segments[i], b.segments[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.segments) < len(b.segments):
		return -1
	case len(a.segments) > len(b.segments):
		return 1
	default:
		return 0
	}
}

// HasPrefix reports whether prefix's root and segments lead p.
func HasPrefix(p, prefix RawPath, profile platform.Profile) bool {
	if compareRoot(p.root, prefix.root, profile) != 0 {
		return false
	}
	if len(prefix.segments) > len(p.segments) {
		return false
	}
	for i, s := range prefix.segments {
		if profile.Compare(p.segments[i], s) != 0 {
			return false
		}
	}
	return true
}

// SpecialFolder asks profile for a well-known folder and parses it. Unknown,
// unset or unparsable folders, and relative values, all yield false.
func SpecialFolder(kind platform.FolderKind, profile platform.Profile) (RawPath, bool) {
	s, ok := profile.SpecialFolder(kind)
	if !ok {
		return RawPath{}, false
	}
	p, err := Parse(s, profile)
	if err != nil || !p.IsAbs() {
		return RawPath{}, false
	}
	return p, true
}

func compareRoot(a, b platform.Root, profile platform.Profile) int {
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}
		return 1
	}
	switch a.Kind() {
	case platform.RootDrive:
		switch {
		case a.Drive() < b.Drive():
			return -1
		case a.Drive() > b.Drive():
			return 1
		}
	case platform.RootUNC:
		if c := profile.Compare(a.Server(), b.Server()); c != 0 {
			return c
		}
		return profile.Compare(a.Share(), b.Share())
	}
	return 0
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
