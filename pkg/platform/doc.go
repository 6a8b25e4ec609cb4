// Package platform abstracts the OS-specific facts of path grammar.
//
// A Profile knows which separators are accepted on input and which one is
// emitted on output, how roots are spelled (a single "/" on POSIX-like
// systems, drive letters and UNC shares on Windows-like systems), how path
// segments compare (exactly, or ordinal case-insensitive), which segment
// names are reserved, and where the special folders (home, temp, app data,
// ...) live.
//
// Two profiles exist:
//
//   - NewPosix: "/" only, case-sensitive, special folders from the environment
//   - NewWindows: "/" and "\" accepted, "\" emitted, case-insensitive, drive
//     and UNC roots, special folders from the known-folder registry
//
// Profiles are immutable values. Host returns the profile compiled in for the
// running OS; tests and cross-platform tools inject NewPosix or NewWindows
// explicitly. A process never switches profiles after startup.
package platform
