// Package history persists run reports in SQLite so past batch outcomes
// stay inspectable after the console output is gone.
//
// The store keeps one row per run plus its failure list, bounded by the
// configured retention. Schema changes bump schemaVersion in store.go;
// users delete the database to adopt the new schema.
package history
