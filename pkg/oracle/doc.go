// Package oracle answers questions about the real filesystem on behalf of
// the path layer.
//
// An Oracle reports Facts for a path (does it exist, is it a file or a
// directory, where does it resolve to) and canonicalizes paths by following
// symlinks. Stat never fails: a missing or unreadable path simply reports
// Exists == false. Canonicalize fails with NOT_FOUND when some prefix of the
// path is missing.
//
// Two implementations exist:
//
//   - FS wraps an afero.Fs. NewOS uses the real filesystem and resolves
//     links with filepath.EvalSymlinks; other afero filesystems are walked
//     prefix by prefix.
//   - Memory is a deterministic in-memory tree used by tests.
//
// Oracles never cache: facts can go stale the moment they are returned.
package oracle
