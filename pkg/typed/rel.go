package typed

import (
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// RelFile is a relative path declared to name a file.
type RelFile struct{ pathBase }

// RelDir is a relative path declared to name a directory.
type RelDir struct{ pathBase }

func (RelFile) isFile() {}
func (RelFile) isRel()  {}
func (RelDir) isDir()   {}
func (RelDir) isRel()   {}

// ParseRelFile parses a relative file path.
func ParseRelFile(input string, profile platform.Profile) (RelFile, error) {
	b, err := parseAs(input, profile, kindRelFile)
	return RelFile{b}, err
}

// ParseRelDir parses a relative directory path.
func ParseRelDir(input string, profile platform.Profile) (RelDir, error) {
	b, err := parseAs(input, profile, kindRelDir)
	return RelDir{b}, err
}

// RelFileFromRaw tags raw as a relative file.
func RelFileFromRaw(raw paths.RawPath, profile platform.Profile) (RelFile, error) {
	if err := checkRaw(raw, profile, kindRelFile); err != nil {
		return RelFile{}, err
	}
	return RelFile{pathBase{raw: raw, profile: profile}}, nil
}

// RelDirFromRaw tags raw as a relative directory.
func RelDirFromRaw(raw paths.RawPath, profile platform.Profile) (RelDir, error) {
	if err := checkRaw(raw, profile, kindRelDir); err != nil {
		return RelDir{}, err
	}
	return RelDir{pathBase{raw: raw, profile: profile}}, nil
}

// MustRelFile parses input with the host profile and panics on error.
func MustRelFile(input string) RelFile {
	return mustHost(ParseRelFile(input, platform.Host()))
}

// MustRelDir parses input with the host profile and panics on error.
func MustRelDir(input string) RelDir {
	return mustHost(ParseRelDir(input, platform.Host()))
}

func (f RelFile) Kind() Kind { return kindRelFile }
func (d RelDir) Kind() Kind  { return kindRelDir }

func (f RelFile) String() string { return f.render() }
func (d RelDir) String() string  { return d.renderDir() }

// MakeAbsolute joins f onto base. It fails with INVALID_JOIN when f is not
// relative after all, base has no root, or the profiles differ. No normalization happens, so
// leading ".." segments stay in the result.
func (f RelFile) MakeAbsolute(base AbsDir) (AbsFile, error) {
	raw, err := makeAbsolute(f.pathBase, base)
	if err != nil {
		return AbsFile{}, err
	}
	return AbsFile{pathBase{raw: raw, profile: base.Profile()}}, nil
}

// MakeAbsolute joins d onto base.
func (d RelDir) MakeAbsolute(base AbsDir) (AbsDir, error) {
	raw, err := makeAbsolute(d.pathBase, base)
	if err != nil {
		return AbsDir{}, err
	}
	return AbsDir{pathBase{raw: raw, profile: base.Profile()}}, nil
}

func makeAbsolute(rel pathBase, base AbsDir) (paths.RawPath, error) {
	// the zero AbsDir has no root
	if !base.raw.IsAbs() {
		return paths.RawPath{}, errors.New(errors.ErrInvalidJoin, "base is not an absolute directory").
			WithPath(rel.render())
	}
	if rel.raw.IsAbs() {
		return paths.RawPath{}, errors.New(errors.ErrInvalidJoin, "path is not relative").
			WithPath(rel.render())
	}
	if !sameProfile(rel.Profile(), base.Profile()) {
		return paths.RawPath{}, errors.New(errors.ErrInvalidJoin, "paths use different platform profiles").
			WithPath(rel.render()).
			WithDetail("base", base.String())
	}
	return paths.Join(base.raw, rel.raw)
}

// AsDir declares that f names a directory.
func (f RelFile) AsDir() RelDir { return RelDir(f) }

// AsFile declares that d names a file. It fails for "." and "..".
func (d RelDir) AsFile() (RelFile, error) {
	if !hasFileName(d.raw) {
		return RelFile{}, malformed(d.String(), "directory has no file name")
	}
	return RelFile(d), nil
}

// Parent returns the lexical parent directory.
func (f RelFile) Parent() (RelDir, bool) { return relParent(f.pathBase) }

// Parent returns the lexical parent directory, spelled with ".." when d
// already ends in "." or "..".
func (d RelDir) Parent() (RelDir, bool) { return relParent(d.pathBase) }

func relParent(b pathBase) (RelDir, bool) {
	raw, ok := paths.Parent(b.raw)
	if !ok {
		return RelDir{}, false
	}
	return RelDir{pathBase{raw: raw, profile: b.profile}}, true
}

// JoinFile appends a relative file to d.
func (d RelDir) JoinFile(rel RelFile) (RelFile, error) {
	raw, err := joinRel(d, rel.pathBase)
	if err != nil {
		return RelFile{}, err
	}
	return RelFile{pathBase{raw: raw, profile: d.profile}}, nil
}

// JoinDir appends a relative directory to d.
func (d RelDir) JoinDir(rel RelDir) (RelDir, error) {
	raw, err := joinRel(d, rel.pathBase)
	if err != nil {
		return RelDir{}, err
	}
	return RelDir{pathBase{raw: raw, profile: d.profile}}, nil
}

func joinRel(d RelDir, rel pathBase) (paths.RawPath, error) {
	if !sameProfile(d.Profile(), rel.Profile()) {
		return paths.RawPath{}, errors.New(errors.ErrInvalidJoin, "paths use different platform profiles").
			WithPath(rel.render())
	}
	return paths.Join(d.raw, rel.raw)
}

// Normalize resolves "." and ".." lexically. A leading ".." cannot be
// resolved without a base and fails with CANNOT_NORMALIZE.
func (f RelFile) Normalize() (RelFile, error) {
	raw, err := paths.LexicallyNormalize(f.raw)
	if err != nil {
		return RelFile{}, err
	}
	return RelFileFromRaw(raw, f.Profile())
}

// Normalize resolves "." and ".." lexically; a path that cancels out
// becomes ".".
func (d RelDir) Normalize() (RelDir, error) {
	raw, err := paths.LexicallyNormalize(d.raw)
	if err != nil {
		return RelDir{}, err
	}
	return RelDirFromRaw(raw, d.Profile())
}

func (f RelFile) Equal(o RelFile) bool { return f.equal(o.pathBase) }
func (d RelDir) Equal(o RelDir) bool   { return d.equal(o.pathBase) }

func (f RelFile) Compare(o RelFile) int { return f.compare(o.pathBase) }
func (d RelDir) Compare(o RelDir) int   { return d.compare(o.pathBase) }
