package platform

import (
	"fmt"
	"unicode"
)

// RootKind enumerates the ways a path can be anchored.
type RootKind int

const (
	// RootNone marks a relative path.
	RootNone RootKind = iota
	// RootPosix is the single "/" root.
	RootPosix
	// RootDrive is a Windows drive letter root such as C:\.
	RootDrive
	// RootUNC is a Windows network share root such as \\server\share.
	RootUNC
)

// Root is the anchor of a path. The zero value is RootNone.
type Root struct {
	kind   RootKind
	drive  byte
	server string
	share  string
}

// NoRoot returns the root of relative paths.
func NoRoot() Root { return Root{} }

// PosixRoot returns the "/" root.
func PosixRoot() Root { return Root{kind: RootPosix} }

// DriveRoot returns a drive root. The letter is stored upper-case.
func DriveRoot(letter byte) Root {
	return Root{kind: RootDrive, drive: byte(unicode.ToUpper(rune(letter)))}
}

// UNCRoot returns a network share root.
func UNCRoot(server, share string) Root {
	return Root{kind: RootUNC, server: server, share: share}
}

// Kind returns the root kind.
func (r Root) Kind() RootKind { return r.kind }

// IsAbs reports whether paths with this root are absolute.
func (r Root) IsAbs() bool { return r.kind != RootNone }

// Drive returns the drive letter, or 0 for non-drive roots.
func (r Root) Drive() byte { return r.drive }

// Server returns the UNC server name.
func (r Root) Server() string { return r.server }

// Share returns the UNC share name.
func (r Root) Share() string { return r.share }

// String returns a profile-independent debug form.
func (r Root) String() string {
	switch r.kind {
	case RootPosix:
		return "posix"
	case RootDrive:
		return fmt.Sprintf("drive(%c)", r.drive)
	case RootUNC:
		return fmt.Sprintf("unc(%s,%s)", r.server, r.share)
	default:
		return "none"
	}
}

// isDriveLetter reports whether c can name a drive.
func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
