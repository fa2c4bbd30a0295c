package commit

import (
	"github.com/dshills/drawstorm/internal/engine/document"
)

// Record is one staged change: one item, in one container context, changed
// in one way. Records are produced in staging order, which is meaningful
// because later records may supersede earlier ones for the same
// (item, screen) pair.
type Record struct {
	// Item identifies the affected object. Borrowed, never owned.
	Item document.Item

	// Screen is the logical container the item lived in when the change
	// was staged. nil means no container context.
	Screen document.Screen

	// Change is the kind of change plus its modifier flags.
	Change Change

	// Snapshot is an owned deep copy of the item's pre-change state.
	// Non-nil exactly when Change.Kind is Modify.
	Snapshot document.Item
}

// String returns a human-readable representation of the record.
func (r Record) String() string {
	return r.Change.String()
}

// releaseSnapshot releases the record's snapshot if it holds resources.
// Safe to call on records without one.
func (r Record) releaseSnapshot() {
	release(r.Snapshot)
}

// release invokes the snapshot's cleanup hook, if it has one.
func release(snapshot document.Item) {
	if snapshot == nil {
		return
	}
	if rel, ok := snapshot.(document.Releaser); ok {
		rel.Release()
	}
}
