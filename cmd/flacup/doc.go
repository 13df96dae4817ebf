// Package main hosts the flacup CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into batch
// re-encode runs, history lookups, empty-directory pruning, file-set
// comparisons, and configuration scaffolding. It centralizes configuration
// resolution, logging setup, and progress rendering so subcommands can focus
// on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
