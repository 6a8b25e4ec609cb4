package typed

import (
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// Path is implemented by AbsFile, AbsDir, RelFile and RelDir, and by
// nothing else.
type Path interface {
	Raw() paths.RawPath
	Profile() platform.Profile
	Kind() Kind
	String() string
	isPath()
}

// File is implemented by AbsFile and RelFile.
type File interface {
	Path
	isFile()
}

// Dir is implemented by AbsDir and RelDir.
type Dir interface {
	Path
	isDir()
}

// Abs is implemented by AbsFile and AbsDir.
type Abs interface {
	Path
	isAbs()
}

// Rel is implemented by RelFile and RelDir.
type Rel interface {
	Path
	isRel()
}

// pathBase holds what every typed path carries.
type pathBase struct {
	raw     paths.RawPath
	profile platform.Profile
}

func (b pathBase) isPath() {}

// Raw returns the untyped path.
func (b pathBase) Raw() paths.RawPath { return b.raw }

// Profile returns the profile the path was parsed under. Zero values
// report the host profile.
func (b pathBase) Profile() platform.Profile {
	if b.profile == nil {
		return platform.Host()
	}
	return b.profile
}

// Segments returns a copy of the path segments.
func (b pathBase) Segments() []string { return b.raw.Segments() }

// Name returns the last segment, or "" for a root.
func (b pathBase) Name() string { return paths.Base(b.raw) }

// Ext returns the extension of the last segment, dot included.
func (b pathBase) Ext() string { return paths.Ext(b.raw) }

// Match reports whether the path matches a slash-separated glob.
func (b pathBase) Match(pattern string) (bool, error) {
	return paths.Match(b.raw, pattern, b.Profile())
}

func (b pathBase) render() string { return paths.Render(b.raw, b.Profile()) }

// renderDir appends the output separator unless the path is a bare root,
// whose rendering already ends with one.
func (b pathBase) renderDir() string {
	if b.raw.IsRoot() {
		return b.render()
	}
	return b.render() + string(b.Profile().Separator())
}

func (b pathBase) equal(o pathBase) bool {
	return sameProfile(b.Profile(), o.Profile()) && paths.Equal(b.raw, o.raw, b.Profile())
}

func (b pathBase) compare(o pathBase) int {
	return paths.Compare(b.raw, o.raw, b.Profile())
}

func sameProfile(a, b platform.Profile) bool {
	return a.Name() == b.Name()
}

// hasFileName reports whether the last segment can name a file.
func hasFileName(raw paths.RawPath) bool {
	if raw.Len() == 0 {
		return false
	}
	last := paths.Base(raw)
	return last != paths.CurDir && last != paths.ParentDir
}

func malformed(input, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrMalformedPath, format, args...).WithPath(input)
}

// checkRaw checks the locality of raw and, for files, its last segment.
func checkRaw(raw paths.RawPath, profile platform.Profile, kind Kind) error {
	if raw.IsZero() {
		return errors.New(errors.ErrMalformedPath, "empty path")
	}
	if err := profile.CheckRoot(raw.Root()); err != nil {
		return err
	}
	shown := paths.Render(raw, profile)
	switch {
	case kind.Locality == LocalityAbs && !raw.IsAbs():
		return malformed(shown, "expected an absolute path")
	case kind.Locality == LocalityRel && raw.IsAbs():
		return malformed(shown, "expected a relative path")
	case kind.Form == FormFile && !hasFileName(raw):
		return malformed(shown, "expected a file path, got no file name")
	}
	return nil
}

// parseAs parses input and checks it against kind. A trailing separator
// marks a directory, so file kinds reject it.
func parseAs(input string, profile platform.Profile, kind Kind) (pathBase, error) {
	raw, err := paths.Parse(input, profile)
	if err != nil {
		return pathBase{}, err
	}
	if kind.Form == FormFile && paths.HasTrailingSeparator(input, profile) {
		return pathBase{}, malformed(input, "expected a file path, got a trailing separator")
	}
	if err := checkRaw(raw, profile, kind); err != nil {
		if pe, ok := err.(*errors.PathError); ok {
			pe.WithPath(input)
		}
		return pathBase{}, err
	}
	return pathBase{raw: raw, profile: profile}, nil
}

// Classify parses input and decides its kind from syntax alone. A trailing
// separator, a bare root, or a final "." or ".." make a directory;
// everything else is a file. This is the only default the package applies:
// callers who know better reclassify with AsDir or ask package validation.
func Classify(input string, profile platform.Profile) (Path, error) {
	raw, err := paths.Parse(input, profile)
	if err != nil {
		return nil, err
	}
	b := pathBase{raw: raw, profile: profile}
	isDir := paths.HasTrailingSeparator(input, profile) || !hasFileName(raw)

	switch {
	case raw.IsAbs() && isDir:
		return AbsDir{b}, nil
	case raw.IsAbs():
		return AbsFile{b}, nil
	case isDir:
		return RelDir{b}, nil
	default:
		return RelFile{b}, nil
	}
}

// Retag rebuilds a path of the same static kind as like, from raw. It is
// the way generic code turns a computed RawPath back into a P.
func Retag[P Path](like P, raw paths.RawPath) (P, error) {
	var (
		out Path
		err error
	)
	profile := like.Profile()
	switch any(like).(type) {
	case AbsFile:
		out, err = AbsFileFromRaw(raw, profile)
	case AbsDir:
		out, err = AbsDirFromRaw(raw, profile)
	case RelFile:
		out, err = RelFileFromRaw(raw, profile)
	case RelDir:
		out, err = RelDirFromRaw(raw, profile)
	default:
		err = errors.Newf(errors.ErrInternal, "unknown path type %T", like)
	}
	if err != nil {
		var zero P
		return zero, err
	}
	return out.(P), nil
}

// SpecialFolder resolves a well-known folder. Unknown, unset or
// unparsable folders yield false, never an error.
func SpecialFolder(kind platform.FolderKind, profile platform.Profile) (AbsDir, bool) {
	raw, ok := paths.SpecialFolder(kind, profile)
	if !ok {
		return AbsDir{}, false
	}
	return AbsDir{pathBase{raw: raw, profile: profile}}, true
}

func mustHost[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
