// Package reencode drives batch re-encoding of FLAC files in place.
//
// The engine filters discovered files through the vendor-string policy,
// hands candidates to a bounded orchestrator that supervises external
// encoder processes, and folds per-file outcomes into a single run report.
// Only setup problems abort a run; per-file read failures become skips and
// per-file encode failures are recorded and reported at the end.
package reencode
