// Package typed tags paths with their kind so that the compiler checks path
// shapes.
//
// A path has a Locality (absolute or relative) and a Form (file or
// directory). Each combination is its own type: AbsFile, AbsDir, RelFile and
// RelDir. A function that needs "an absolute directory" takes an AbsDir and
// cannot be handed a relative path, or a path known to be a file.
//
// Construction parses and checks Locality; file types also need a last
// segment that names something (not a root, "." or ".."). Form is a
// declaration made by the caller or by syntax (Classify); nothing in this
// package touches the filesystem. Checking a declared Form against reality
// is the job of package validation.
//
// Conversions are explicit:
//
//   - MakeAbsolute joins a relative path onto an AbsDir
//   - MakeRelative expresses an absolute path from an AbsDir
//   - AsDir and AsFile reclassify on the caller's word, with no I/O
//
// Every value remembers the platform.Profile it was parsed under; mixing
// profiles in a conversion is an error.
package typed
