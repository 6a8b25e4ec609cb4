package platform

import (
	"strings"
)

const posixName = "posix"

type posix struct {
	folders FolderSource
}

// NewPosix returns the POSIX-like profile. Special folders come from the
// process environment unless WithFolders says otherwise.
func NewPosix(opts ...Option) Profile {
	o := buildOptions(EnvFolders(nil), opts)
	return &posix{folders: o.folders}
}

func (p *posix) Name() string { return posixName }

func (p *posix) Separator() rune { return '/' }

func (p *posix) IsSeparator(r rune) bool { return r == '/' }

func (p *posix) CaseSensitive() bool { return true }

func (p *posix) Compare(a, b string) int { return strings.Compare(a, b) }

func (p *posix) Fold(s string) string { return s }

func (p *posix) CheckSegment(segment string) error {
	return checkCommon(segment, p.IsSeparator)
}

func (p *posix) CheckRoot(root Root) error {
	switch root.Kind() {
	case RootNone, RootPosix:
		return nil
	default:
		return malformed(root.String(), "root kind not available on posix")
	}
}

func (p *posix) JoinRoot(root Root) string {
	if root.Kind() == RootPosix {
		return "/"
	}
	return ""
}

func (p *posix) Split(input string) (Root, []string, error) {
	if input == "" {
		return Root{}, nil, malformed(input, "path is empty")
	}
	if strings.IndexByte(input, 0) >= 0 {
		return Root{}, nil, malformed(input, "path contains a null byte")
	}

	root := NoRoot()
	rest := input
	if strings.HasPrefix(input, "/") {
		root = PosixRoot()
		rest = input[1:]
	} else if len(input) >= 2 && isDriveLetter(input[0]) && input[1] == ':' {
		return Root{}, nil, malformed(input, "drive letter root is not valid on posix")
	}

	segments, err := splitSegments(rest, p.IsSeparator, p.CheckSegment)
	if err != nil {
		return Root{}, nil, withInput(err, input)
	}
	return root, segments, nil
}

func (p *posix) SpecialFolder(kind FolderKind) (string, bool) {
	return p.folders(kind)
}
