// Package testutil provides fixtures for testing code that validates paths
// against a filesystem.
//
// Key components:
//   - TestEnvironment: a fixture tree behind an oracle, in one of three
//     backings (memory oracle, afero MemMapFs, or a real temp directory)
//   - FileTree: declarative description of files, directories and links
//   - small helpers for real-filesystem tests (CreateFile, CreateSymlink)
//
// Usage guidelines:
//   - prefer EnvMemoryOnly; it supports links and both platform profiles
//   - use EnvIsolated only when the OS behavior itself is under test
//   - define trees inline in the test that uses them
package testutil
