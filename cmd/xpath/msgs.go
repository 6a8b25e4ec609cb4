package xpath

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Inspect, convert and check typed paths"
	MsgParseShort      = "Split a path into root and segments"
	MsgClassifyShort   = "Report the kind of a path from its syntax"
	MsgNormalizeShort  = "Remove . and resolve .. lexically"
	MsgAbsShort        = "Make a path absolute against the base directory"
	MsgRelShort        = "Express an absolute path relative to a base directory"
	MsgCheckShort      = "Check paths against the filesystem"
	MsgResolveShort    = "Resolve symlinks to the canonical path"
	MsgFolderShort     = "Show special folders (home, config, cache...)"
	MsgPortableShort   = "Check that paths are valid on every platform"
	MsgMatchShort      = "Match a path against a glob pattern"
	MsgExpandShort     = "Expand ~, . and environment variables in a path"
	MsgConfigShort     = "Manage the xpath configuration file"
	MsgConfigInitShort = "Write a commented config file"
	MsgConfigShowShort = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrLoadConfig     = "failed to load configuration: %w"
	MsgErrHostOnly       = "filesystem checks need the host platform"
	MsgErrOracleProfile  = "filesystem and platform disagree"
	MsgErrUnknownAs      = "--as must be file or dir"
	MsgErrNotAbsolute    = "expected an absolute path"
	MsgErrUnknownFolder  = "unknown folder"
	MsgErrFolderNotKnown = "folder not known on this platform"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/xpath/config.toml)"
	MsgFlagPlatform = "Path rules: auto, posix or windows"
	MsgFlagStrict   = "Reject paths that do not exist"
	MsgFlagBase     = "Directory relative paths are resolved against"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagAs       = "Check the path as a file or dir, ignoring its syntax"
	MsgFlagNorm     = "Normalize the result lexically"
	MsgFlagOutput   = "Write to this file instead of the default location"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/classify-long.txt
	msgClassifyLongRaw string
	MsgClassifyLong    = strings.TrimSpace(msgClassifyLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/expand-long.txt
	msgExpandLongRaw string
	MsgExpandLong    = strings.TrimSpace(msgExpandLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
