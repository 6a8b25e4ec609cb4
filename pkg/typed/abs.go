package typed

import (
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// AbsFile is an absolute path declared to name a file.
type AbsFile struct{ pathBase }

// AbsDir is an absolute path declared to name a directory.
type AbsDir struct{ pathBase }

func (AbsFile) isFile() {}
func (AbsFile) isAbs()  {}
func (AbsDir) isDir()   {}
func (AbsDir) isAbs()   {}

// ParseAbsFile parses an absolute file path.
func ParseAbsFile(input string, profile platform.Profile) (AbsFile, error) {
	b, err := parseAs(input, profile, kindAbsFile)
	return AbsFile{b}, err
}

// ParseAbsDir parses an absolute directory path. A trailing separator is
// optional.
func ParseAbsDir(input string, profile platform.Profile) (AbsDir, error) {
	b, err := parseAs(input, profile, kindAbsDir)
	return AbsDir{b}, err
}

// AbsFileFromRaw tags raw as an absolute file.
func AbsFileFromRaw(raw paths.RawPath, profile platform.Profile) (AbsFile, error) {
	if err := checkRaw(raw, profile, kindAbsFile); err != nil {
		return AbsFile{}, err
	}
	return AbsFile{pathBase{raw: raw, profile: profile}}, nil
}

// AbsDirFromRaw tags raw as an absolute directory.
func AbsDirFromRaw(raw paths.RawPath, profile platform.Profile) (AbsDir, error) {
	if err := checkRaw(raw, profile, kindAbsDir); err != nil {
		return AbsDir{}, err
	}
	return AbsDir{pathBase{raw: raw, profile: profile}}, nil
}

// MustAbsFile parses input with the host profile and panics on error.
func MustAbsFile(input string) AbsFile {
	return mustHost(ParseAbsFile(input, platform.Host()))
}

// MustAbsDir parses input with the host profile and panics on error.
func MustAbsDir(input string) AbsDir {
	return mustHost(ParseAbsDir(input, platform.Host()))
}

func (f AbsFile) Kind() Kind { return kindAbsFile }
func (d AbsDir) Kind() Kind  { return kindAbsDir }

// String renders the path natively.
func (f AbsFile) String() string { return f.render() }

// String renders the path natively, with a trailing separator.
func (d AbsDir) String() string { return d.renderDir() }

// IsRoot reports whether d is a bare root.
func (d AbsDir) IsRoot() bool { return d.raw.IsRoot() }

// MakeRelative expresses f relative to base. Different roots, drives or
// profiles give NOT_UNDER_BASE; there is no absolute fallback.
func (f AbsFile) MakeRelative(base AbsDir) (RelFile, error) {
	raw, err := relativeTo(f.pathBase, base)
	if err != nil {
		return RelFile{}, err
	}
	if !hasFileName(raw) {
		return RelFile{}, errors.New(errors.ErrNotUnderBase, "file has no name relative to base").
			WithPath(f.String()).
			WithDetail("base", base.String())
	}
	return RelFile{pathBase{raw: raw, profile: f.Profile()}}, nil
}

// MakeRelative expresses d relative to base. Equal paths give ".".
func (d AbsDir) MakeRelative(base AbsDir) (RelDir, error) {
	raw, err := relativeTo(d.pathBase, base)
	if err != nil {
		return RelDir{}, err
	}
	return RelDir{pathBase{raw: raw, profile: d.Profile()}}, nil
}

func relativeTo(target pathBase, base AbsDir) (paths.RawPath, error) {
	if !sameProfile(target.Profile(), base.Profile()) {
		return paths.RawPath{}, errors.New(errors.ErrNotUnderBase, "paths use different platform profiles").
			WithPath(target.render()).
			WithDetail("base", base.String())
	}
	raw, err := paths.RelativeTo(target.raw, base.raw, target.Profile())
	if err != nil {
		if pe, ok := err.(*errors.PathError); ok {
			pe.WithPath(target.render())
		}
		return paths.RawPath{}, err
	}
	return raw, nil
}

// AsDir declares that f names a directory. No I/O is done.
func (f AbsFile) AsDir() AbsDir { return AbsDir(f) }

// AsFile declares that d names a file. It fails when d has no file name:
// a root, or a path ending in "." or "..".
func (d AbsDir) AsFile() (AbsFile, error) {
	if !hasFileName(d.raw) {
		return AbsFile{}, malformed(d.String(), "directory has no file name")
	}
	return AbsFile(d), nil
}

// Parent returns the containing directory. A root has none.
func (f AbsFile) Parent() (AbsDir, bool) { return absParent(f.pathBase) }

// Parent returns the containing directory. A root has none.
func (d AbsDir) Parent() (AbsDir, bool) { return absParent(d.pathBase) }

func absParent(b pathBase) (AbsDir, bool) {
	raw, ok := paths.Parent(b.raw)
	if !ok {
		return AbsDir{}, false
	}
	return AbsDir{pathBase{raw: raw, profile: b.profile}}, true
}

// JoinFile appends a relative file to d.
func (d AbsDir) JoinFile(rel RelFile) (AbsFile, error) { return rel.MakeAbsolute(d) }

// JoinDir appends a relative directory to d.
func (d AbsDir) JoinDir(rel RelDir) (AbsDir, error) { return rel.MakeAbsolute(d) }

// File names an entry of d, checked like any parsed segment.
func (d AbsDir) File(name string) (AbsFile, error) {
	raw, err := paths.Append(d.raw, d.Profile(), name)
	if err != nil {
		return AbsFile{}, err
	}
	return AbsFileFromRaw(raw, d.Profile())
}

// Dir names a subdirectory of d.
func (d AbsDir) Dir(name string) (AbsDir, error) {
	raw, err := paths.Append(d.raw, d.Profile(), name)
	if err != nil {
		return AbsDir{}, err
	}
	return AbsDirFromRaw(raw, d.Profile())
}

// Contains reports whether p lies under d, lexically.
func (d AbsDir) Contains(p Abs) bool {
	return sameProfile(d.Profile(), p.Profile()) && paths.HasPrefix(p.Raw(), d.raw, d.Profile())
}

// Normalize removes "." and resolves ".." lexically.
func (f AbsFile) Normalize() (AbsFile, error) {
	raw, err := paths.LexicallyNormalize(f.raw)
	if err != nil {
		return AbsFile{}, err
	}
	return AbsFileFromRaw(raw, f.Profile())
}

// Normalize removes "." and resolves ".." lexically. It never climbs above
// the root.
func (d AbsDir) Normalize() (AbsDir, error) {
	raw, err := paths.LexicallyNormalize(d.raw)
	if err != nil {
		return AbsDir{}, err
	}
	return AbsDirFromRaw(raw, d.Profile())
}

// Equal compares under the profile; values from different profiles differ.
func (f AbsFile) Equal(o AbsFile) bool { return f.equal(o.pathBase) }

// Equal compares under the profile; values from different profiles differ.
func (d AbsDir) Equal(o AbsDir) bool { return d.equal(o.pathBase) }

// Compare orders paths under f's profile.
func (f AbsFile) Compare(o AbsFile) int { return f.compare(o.pathBase) }

// Compare orders paths under d's profile.
func (d AbsDir) Compare(o AbsDir) int { return d.compare(o.pathBase) }
