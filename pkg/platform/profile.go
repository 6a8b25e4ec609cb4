package platform

import (
	stderrors "errors"
	"strings"
	"sync"

	"github.com/arthur-debert/xpath/pkg/errors"
)

// MaxSegmentLength is the longest segment accepted on every platform.
const MaxSegmentLength = 255

// Profile is the set of OS-specific capabilities the path layer relies on.
type Profile interface {
	// Name identifies the profile: "posix" or "windows".
	Name() string
	// Split parses the root of input and returns it with the remaining
	// non-empty segments. Consecutive separators collapse.
	Split(input string) (Root, []string, error)
	// CheckRoot reports whether the profile can express root.
	CheckRoot(root Root) error
	// JoinRoot renders a root, including its trailing separator.
	JoinRoot(root Root) string
	// Separator is the separator emitted on output.
	Separator() rune
	// IsSeparator reports whether r separates segments on input.
	IsSeparator(r rune) bool
	// CaseSensitive reports whether segment comparison is exact.
	CaseSensitive() bool
	// Compare orders two segments.
	Compare(a, b string) int
	// Fold returns a key such that Fold(a) == Fold(b) iff Compare(a, b) == 0.
	Fold(s string) string
	// CheckSegment validates a single segment.
	CheckSegment(segment string) error
	// SpecialFolder returns the native absolute path of a special folder.
	SpecialFolder(kind FolderKind) (string, bool)
}

// Option configures a profile at construction.
type Option func(*options)

type options struct {
	folders FolderSource
}

// WithFolders replaces the special-folder source of a profile.
func WithFolders(src FolderSource) Option {
	return func(o *options) {
		o.folders = src
	}
}

func buildOptions(defaults FolderSource, opts []Option) options {
	o := options{folders: defaults}
	for _, opt := range opts {
		opt(&o)
	}
	if o.folders == nil {
		o.folders = NoFolders
	}
	return o
}

var (
	hostOnce    sync.Once
	hostProfile Profile
)

// Host returns the profile compiled in for the running OS. It is built once
// and never changes for the life of the process.
func Host() Profile {
	hostOnce.Do(func() {
		hostProfile = newHost()
	})
	return hostProfile
}

// ByName selects a profile by name. "auto" and "" select Host.
func ByName(name string) (Profile, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return Host(), nil
	case posixName:
		return NewPosix(), nil
	case windowsName:
		return NewWindows(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown platform profile %q", name).
			WithDetail("choices", []string{"auto", posixName, windowsName})
	}
}

func malformed(input, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrMalformedPath, format, args...).WithPath(input)
}

// checkCommon applies the rules shared by every profile.
func checkCommon(segment string, isSep func(rune) bool) error {
	if segment == "" {
		return malformed(segment, "empty segment")
	}
	if len(segment) > MaxSegmentLength {
		return malformed(segment, "segment longer than %d bytes", MaxSegmentLength)
	}
	for _, r := range segment {
		if r == 0 {
			return malformed(segment, "segment contains a null byte")
		}
		if isSep(r) {
			return malformed(segment, "segment contains a separator")
		}
	}
	return nil
}

// splitSegments splits on any separator and drops the empty pieces left by
// leading, trailing or repeated separators.
func splitSegments(rest string, isSep func(rune) bool, check func(string) error) ([]string, error) {
	fields := strings.FieldsFunc(rest, isSep)
	for _, f := range fields {
		if err := check(f); err != nil {
			return nil, err
		}
	}
	return fields, nil
}

// withInput points a segment-level error at the whole input, keeping the
// offending segment as a detail.
func withInput(err error, input string) error {
	var pe *errors.PathError
	if stderrors.As(err, &pe) {
		if pe.Path != input {
			pe.WithDetail("segment", pe.Path)
		}
		return pe.WithPath(input)
	}
	return err
}
