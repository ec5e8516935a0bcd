// Package history keeps a local, SQLite-backed record of recently viewed
// movies. Recording is best-effort: the detail view never blocks or fails
// on history writes.
package history
