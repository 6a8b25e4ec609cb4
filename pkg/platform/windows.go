package platform

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const windowsName = "windows"

// reservedChars are rejected anywhere in a Windows segment.
const reservedChars = `<>:"|?*`

type windows struct {
	folders FolderSource
}

// NewWindows returns the Windows-like profile. Special folders come from the
// known-folder registry unless WithFolders says otherwise.
func NewWindows(opts ...Option) Profile {
	o := buildOptions(KnownFolders(), opts)
	return &windows{folders: o.folders}
}

func (w *windows) Name() string { return windowsName }

func (w *windows) Separator() rune { return '\\' }

func (w *windows) IsSeparator(r rune) bool { return r == '\\' || r == '/' }

func (w *windows) CaseSensitive() bool { return false }

// Compare is ordinal case-insensitive: both sides are upper-cased rune by
// rune with the invariant Unicode mapping and compared as code points.
// Bytes that are not valid UTF-8 compare as raw bytes, after every rune.
func (w *windows) Compare(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		ua, ub := upperKey(ra, na, a[0]), upperKey(rb, nb, b[0])
		if ua != ub {
			if ua < ub {
				return -1
			}
			return 1
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// upperKey is the upper-cased rune, or for an undecodable byte a key above
// every valid code point.
func upperKey(r rune, n int, b byte) rune {
	if r == utf8.RuneError && n == 1 {
		return unicode.MaxRune + 1 + rune(b)
	}
	return unicode.ToUpper(r)
}

func (w *windows) Fold(s string) string { return strings.Map(unicode.ToUpper, s) }

func (w *windows) CheckSegment(segment string) error {
	if err := checkCommon(segment, w.IsSeparator); err != nil {
		return err
	}
	return CheckWindowsName(segment)
}

// CheckWindowsName applies the Windows naming rules to a single segment:
// reserved characters, control characters and device names, the latter with
// or without an extension.
func CheckWindowsName(segment string) error {
	if segment == "." || segment == ".." {
		return nil
	}
	if !utf8.ValidString(segment) {
		return malformed(segment, "segment is not valid UTF-8")
	}
	for _, r := range segment {
		if r < 0x20 {
			return malformed(segment, "segment contains control character %#x", r)
		}
		if strings.ContainsRune(reservedChars, r) {
			return malformed(segment, "segment contains reserved character %q", r)
		}
	}
	if isReservedName(segment) {
		return malformed(segment, "segment is a reserved device name")
	}
	return nil
}

func isReservedName(segment string) bool {
	stem := segment
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	stem = strings.ToUpper(strings.TrimRight(stem, " "))
	switch stem {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}
	if len(stem) == 4 && (strings.HasPrefix(stem, "COM") || strings.HasPrefix(stem, "LPT")) {
		return '0' <= stem[3] && stem[3] <= '9'
	}
	return false
}

func (w *windows) CheckRoot(root Root) error {
	switch root.Kind() {
	case RootNone:
		return nil
	case RootDrive:
		if !isDriveLetter(root.Drive()) {
			return malformed(root.String(), "invalid drive letter")
		}
		return nil
	case RootUNC:
		if err := w.CheckSegment(root.Server()); err != nil {
			return malformed(root.String(), "invalid UNC server")
		}
		if err := w.CheckSegment(root.Share()); err != nil {
			return malformed(root.String(), "invalid UNC share")
		}
		return nil
	default:
		return malformed(root.String(), "root kind not available on windows")
	}
}

func (w *windows) JoinRoot(root Root) string {
	switch root.Kind() {
	case RootDrive:
		return string([]byte{root.Drive(), ':', '\\'})
	case RootUNC:
		return `\\` + root.Server() + `\` + root.Share() + `\`
	default:
		return ""
	}
}

func (w *windows) Split(input string) (Root, []string, error) {
	if input == "" {
		return Root{}, nil, malformed(input, "path is empty")
	}
	if strings.IndexByte(input, 0) >= 0 {
		return Root{}, nil, malformed(input, "path contains a null byte")
	}

	root, rest, err := w.splitRoot(input)
	if err != nil {
		return Root{}, nil, err
	}
	segments, err := splitSegments(rest, w.IsSeparator, w.CheckSegment)
	if err != nil {
		return Root{}, nil, withInput(err, input)
	}
	return root, segments, nil
}

func (w *windows) splitRoot(input string) (Root, string, error) {
	sep := func(i int) bool { return i < len(input) && w.IsSeparator(rune(input[i])) }

	switch {
	case len(input) >= 4 && sep(0) && sep(1) && input[2] == '?' && sep(3):
		return w.splitVerbatim(input, input[4:])
	case len(input) >= 4 && sep(0) && sep(1) && input[2] == '.' && sep(3):
		return Root{}, "", malformed(input, "device namespace paths are not supported")
	case sep(0) && sep(1):
		return w.splitUNC(input, input[2:])
	case sep(0):
		return Root{}, "", malformed(input, "rootless absolute path needs a drive or share")
	case len(input) >= 2 && isDriveLetter(input[0]) && input[1] == ':':
		if len(input) == 2 || !sep(2) {
			return Root{}, "", malformed(input, "drive-relative paths are not supported")
		}
		return DriveRoot(input[0]), input[3:], nil
	default:
		return NoRoot(), input, nil
	}
}

// splitVerbatim handles \\?\C:\... and \\?\UNC\server\share\...
func (w *windows) splitVerbatim(input, rest string) (Root, string, error) {
	if len(rest) >= 4 && strings.EqualFold(rest[:3], "UNC") && w.IsSeparator(rune(rest[3])) {
		return w.splitUNC(input, rest[4:])
	}
	if len(rest) >= 2 && isDriveLetter(rest[0]) && rest[1] == ':' {
		if len(rest) == 2 {
			return DriveRoot(rest[0]), "", nil
		}
		if w.IsSeparator(rune(rest[2])) {
			return DriveRoot(rest[0]), rest[3:], nil
		}
	}
	return Root{}, "", malformed(input, "unsupported verbatim prefix")
}

func (w *windows) splitUNC(input, rest string) (Root, string, error) {
	server, rest := w.nextComponent(rest)
	share, rest := w.nextComponent(rest)
	if server == "" || share == "" {
		return Root{}, "", malformed(input, "UNC path needs a server and a share")
	}
	if w.CheckSegment(server) != nil || w.CheckSegment(share) != nil {
		return Root{}, "", malformed(input, "invalid UNC server or share")
	}
	return UNCRoot(server, share), rest, nil
}

// nextComponent skips leading separators and returns the next component and
// what follows it.
func (w *windows) nextComponent(s string) (string, string) {
	s = strings.TrimLeftFunc(s, w.IsSeparator)
	end := strings.IndexFunc(s, w.IsSeparator)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

func (w *windows) SpecialFolder(kind FolderKind) (string, bool) {
	return w.folders(kind)
}
