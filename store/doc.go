// Package store persists path counts keyed by graph fingerprint and policy.
//
// What:
//
//	A small BadgerDB-backed cache. A key is the cave.Graph fingerprint plus the
//	paths.Policy byte; the value is the count as a big-endian int64.
//
// Why:
//
//	Counting under OneExtraVisit grows exponentially with the number of Small
//	caves. Re-running the CLI on an unchanged file should be instant.
//
// Modes:
//
//	Options.Dir == ""   → in-memory database, nothing touches disk
//	Options.Dir != ""   → persistent database rooted at Dir
//
// Errors:
//
//	ErrClosed        - operation on a closed Store
//	ErrCorruptEntry  - a stored value is not a valid count
package store
