// Package validation checks typed paths against an oracle.
//
// A typed path states an intent: "this is a directory". The Engine asks an
// oracle.Oracle whether the filesystem agrees. A path whose declared form
// contradicts what exists is rejected (NOT_A_DIRECTORY, NOT_A_FILE). A path
// that does not exist is fine by default, since the type describes intended
// shape rather than current reality. In strict mode a missing path is
// rejected with DOES_NOT_EXIST.
//
// Strict mode defaults to false and is switched on at build time with
//
//	go build -tags xpath_strict
//
// WithStrict overrides the build default for one Engine. Strictness never
// changes parsing or conversions.
package validation
