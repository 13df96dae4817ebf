// Package flac wraps the reference flac command-line encoder.
//
// The CLI client answers two questions: what version is installed (parsed
// from the trailing token of `flac -v` output) and how to launch one
// in-place re-encode of a file. Encodes run with a fixed flag set
// (--best --verify --force --decode-through-errors); callers supervise the
// returned Process themselves, so a pool of encodes can run concurrently
// without this package holding any state.
package flac
