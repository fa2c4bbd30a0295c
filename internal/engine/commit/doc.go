// Package commit provides the change-staging ledger that backs undo/redo.
//
// During one edit transaction (one user gesture), the editor stages every
// proposed addition, removal, and modification of document objects into a
// [Ledger]. When the gesture completes, the accumulated records are drained
// and pushed to the history stack as one atomic entry; when it is aborted,
// the ledger is cleared and every pre-change snapshot it owns is released.
//
// # Staging
//
// Changes are staged one item at a time, in batches, or by importing an
// externally built history list:
//
//	ledger := commit.New()
//	ledger.Stage(wire, commit.Change{Kind: commit.Add}, sheet).
//		Stage(label, commit.Change{Kind: commit.Modify}, sheet)
//
// Convenience wrappers cover the common cases: Add, Added, Remove, Removed,
// Modify, and Modified (which adopts a caller-made snapshot).
//
// # Deduplication and supersede
//
// The ledger keeps a touched set keyed by item identity. An item gets at
// most one Modify record per transaction: later modify requests are no-ops
// and their snapshots are released immediately, so the undo image always
// reflects the state before the transaction began. A record staged for an
// (item, screen) pair that already has one supersedes it: the old record is
// dropped and its snapshot released. Supersede is scoped to the exact
// (item, screen) pair; records for the same item on other screens survive.
//
// # Snapshots and ownership
//
// A Modify record owns a deep copy of the item's pre-change state. The
// ledger releases every snapshot it still owns when a record is superseded,
// when a duplicate modify is rejected, and on Clear. Drain transfers
// snapshot ownership to the caller along with the records. Live items and
// screens are only borrowed; the ledger never mutates them.
//
// # Errors
//
// Misuse is a programming error and panics: staging Add for an item already
// in the ledger, combining Modify with FlagDone, staging a snapshot-less
// Modify entry, or importing an unknown history status. The one runtime
// failure is an item that cannot produce a clone; the enclosing Modify
// staging adds no record and the first such failure is reported by Err.
//
// # Concurrency
//
// A Ledger is confined to the goroutine driving the edit transaction. It
// performs no locking; one transaction corresponds to one gesture on one
// goroutine, so callers that share a ledger must serialize access.
package commit
