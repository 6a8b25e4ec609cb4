package platform

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
)

//go:generate go run github.com/dmarkham/enumer -type=FolderKind -trimprefix Folder -transform snake

// FolderKind names a well-known per-user directory.
type FolderKind int

const (
	FolderHome FolderKind = iota
	FolderTemp
	FolderAppData
	FolderConfig
	FolderCache
	FolderData
	FolderState
	FolderDesktop
	FolderDocuments
	FolderDownloads
)

// FolderSource resolves a special folder to a native absolute path string.
// The second result is false when the folder is unknown or unset.
type FolderSource func(kind FolderKind) (string, bool)

// NoFolders knows no folder at all.
func NoFolders(FolderKind) (string, bool) { return "", false }

// MapFolders serves folders from a fixed table. Useful in tests.
func MapFolders(m map[FolderKind]string) FolderSource {
	return func(kind FolderKind) (string, bool) {
		v, ok := m[kind]
		if !ok || v == "" {
			return "", false
		}
		return v, true
	}
}

// EnvFolders resolves folders from environment variables only, following
// the XDG base directory conventions with $HOME fallbacks. A nil lookup
// means os.LookupEnv.
func EnvFolders(lookup func(string) (string, bool)) FolderSource {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(name string) (string, bool) {
		v, ok := lookup(name)
		if !ok || v == "" {
			return "", false
		}
		return v, true
	}
	underHome := func(suffix string) (string, bool) {
		home, ok := get("HOME")
		if !ok {
			return "", false
		}
		return strings.TrimRight(home, "/") + "/" + suffix, true
	}
	xdgOrHome := func(name, suffix string) (string, bool) {
		if v, ok := get(name); ok {
			return v, true
		}
		return underHome(suffix)
	}

	return func(kind FolderKind) (string, bool) {
		switch kind {
		case FolderHome:
			return get("HOME")
		case FolderTemp:
			return get("TMPDIR")
		case FolderAppData, FolderData:
			return xdgOrHome("XDG_DATA_HOME", ".local/share")
		case FolderConfig:
			return xdgOrHome("XDG_CONFIG_HOME", ".config")
		case FolderCache:
			return xdgOrHome("XDG_CACHE_HOME", ".cache")
		case FolderState:
			return xdgOrHome("XDG_STATE_HOME", ".local/state")
		case FolderDesktop:
			return get("XDG_DESKTOP_DIR")
		case FolderDocuments:
			return get("XDG_DOCUMENTS_DIR")
		case FolderDownloads:
			return get("XDG_DOWNLOAD_DIR")
		default:
			return "", false
		}
	}
}

// KnownFolders resolves folders through the OS registry of known folders
// as exposed by xdg. On Windows, AppData, Data and Config all map to the
// local application data folder.
func KnownFolders() FolderSource {
	return func(kind FolderKind) (string, bool) {
		var v string
		switch kind {
		case FolderHome:
			v = xdg.Home
		case FolderTemp:
			v = os.TempDir()
		case FolderAppData, FolderData:
			v = xdg.DataHome
		case FolderConfig:
			v = xdg.ConfigHome
		case FolderCache:
			v = xdg.CacheHome
		case FolderState:
			v = xdg.StateHome
		case FolderDesktop:
			v = xdg.UserDirs.Desktop
		case FolderDocuments:
			v = xdg.UserDirs.Documents
		case FolderDownloads:
			v = xdg.UserDirs.Download
		}
		return v, v != ""
	}
}
