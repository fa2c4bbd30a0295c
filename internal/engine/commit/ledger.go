package commit

import (
	"errors"
	"fmt"

	"github.com/dshills/drawstorm/internal/engine/document"
)

// ErrCloneFailed reports an item that could not produce a pre-change
// snapshot. A modification cannot be tracked without a rollback image, so
// the enclosing staging call adds no record.
var ErrCloneFailed = errors.New("item snapshot could not be produced")

// Ledger accumulates the change records of one edit transaction.
//
// Records are kept in staging order. The touched set holds every item
// identity that already has a record, giving the staging paths an O(1)
// membership test. The zero value is an empty ledger ready for use.
type Ledger struct {
	records []Record
	touched map[document.Item]struct{}

	// First snapshot failure observed, see Err.
	err error
}

// New creates an empty ledger for one edit transaction.
func New() *Ledger {
	return &Ledger{
		touched: make(map[document.Item]struct{}),
	}
}

// Stage records a proposed change for item within the given container
// context. Staging calls chain:
//
//	ledger.Stage(wire, commit.Change{Kind: commit.Add}, sheet).
//		Stage(junction, commit.Change{Kind: commit.Remove}, sheet)
//
// Add panics if the item already has a record in this transaction. Remove
// always appends, superseding an earlier record for the same (item, screen)
// pair. Modify collapses onto the item's logical parent and snapshots the
// parent's current state; if the snapshot cannot be produced no record is
// added and Err reports the failure.
func (l *Ledger) Stage(item document.Item, change Change, screen document.Screen) *Ledger {
	if change.Kind == Modify && change.Done() {
		panic("commit: a Modify change cannot carry FlagDone")
	}

	switch change.Kind {
	case Add:
		if l.isTouched(item) {
			panic("commit: Add staged for an item already in the ledger")
		}
		l.makeEntry(item, change, nil, screen)

	case Remove:
		l.makeEntry(item, change, nil, screen)

	case Modify:
		parent := parentOf(item)
		snapshot := parent.Clone()
		if snapshot == nil {
			l.fail(fmt.Errorf("commit: stage modify: %w", ErrCloneFailed))
			return l
		}
		l.createModified(parent, snapshot, change.Flags, screen)

	default:
		panic(fmt.Sprintf("commit: cannot stage change kind %v", change.Kind))
	}

	return l
}

// StageAll stages the same change for every item in order. There is no
// all-or-nothing guarantee: a snapshot failure partway leaves the earlier
// records in the ledger and later items are still staged.
func (l *Ledger) StageAll(items []document.Item, change Change, screen document.Screen) *Ledger {
	for _, item := range items {
		l.Stage(item, change, screen)
	}
	return l
}

// StageHistory imports an externally built history list. Entries with
// StatusUnspecified adopt def. An entry carrying a pre-made snapshot must
// describe a modification; its snapshot is adopted directly and never
// re-cloned. All other entries go through the ordinary staging paths:
// StatusNewItem stages an Add, StatusDeleted a Remove, and StatusChanged a
// Modify that clones the item itself.
func (l *Ledger) StageHistory(entries []HistoryEntry, def Change, screen document.Screen) *Ledger {
	for _, e := range entries {
		change := def
		if e.Status != StatusUnspecified {
			change = Change{Kind: kindForStatus(e.Status)}
		}

		if e.Snapshot != nil {
			if change.Kind != Modify {
				panic("commit: history entry carries a snapshot but is not a modification")
			}
			if change.Done() {
				panic("commit: a Modify change cannot carry FlagDone")
			}
			// The caller already made the undo copy, so adopt it.
			l.createModified(e.Item, e.Snapshot, change.Flags, screen)
			continue
		}

		l.Stage(e.Item, change, screen)
	}
	return l
}

// Add stages the addition of a not-yet-committed item.
func (l *Ledger) Add(item document.Item, screen document.Screen) *Ledger {
	return l.Stage(item, Change{Kind: Add}, screen)
}

// Added stages an item that has already been added to the document.
func (l *Ledger) Added(item document.Item, screen document.Screen) *Ledger {
	return l.Stage(item, Change{Kind: Add, Flags: FlagDone}, screen)
}

// Remove stages the removal of an item.
func (l *Ledger) Remove(item document.Item, screen document.Screen) *Ledger {
	return l.Stage(item, Change{Kind: Remove}, screen)
}

// Removed stages an item that has already been removed from the document.
func (l *Ledger) Removed(item document.Item, screen document.Screen) *Ledger {
	return l.Stage(item, Change{Kind: Remove, Flags: FlagDone}, screen)
}

// Modify stages an in-place change of an item, snapshotting its logical
// parent's current state.
func (l *Ledger) Modify(item document.Item, screen document.Screen) *Ledger {
	return l.Stage(item, Change{Kind: Modify}, screen)
}

// Modified stages an in-place change using a snapshot the caller already
// made. The ledger takes ownership of the snapshot.
func (l *Ledger) Modified(item, snapshot document.Item, screen document.Screen) *Ledger {
	if snapshot == nil {
		panic("commit: Modified requires a pre-made snapshot")
	}
	return l.createModified(item, snapshot, 0, screen)
}

// Status returns the staged change for the item's logical parent within the
// given container context, or the zero Change if nothing was staged.
func (l *Ledger) Status(item document.Item, screen document.Screen) Change {
	if entry := l.findEntry(parentOf(item), screen); entry != nil {
		return entry.Change
	}
	return Change{}
}

// Records returns the staged records in staging order. The slice is a view
// of ledger state: callers must not modify it and must not retain it across
// further staging calls.
func (l *Ledger) Records() []Record {
	return l.records
}

// Len returns the number of staged records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Empty reports whether nothing has been staged.
func (l *Ledger) Empty() bool {
	return len(l.records) == 0
}

// Err returns the first snapshot failure observed since the ledger was
// created or last reset, or nil.
func (l *Ledger) Err() error {
	return l.err
}

// Drain removes and returns every staged record, transferring ownership of
// the snapshots to the caller. The ledger is left empty and ready for the
// next transaction. The consumer pushing the records to history becomes
// responsible for releasing the snapshots it does not keep.
func (l *Ledger) Drain() []Record {
	records := l.records
	l.reset()
	return records
}

// Clear discards every staged record, releasing each owned snapshot exactly
// once. This is the abort path: it must be called when a transaction is
// discarded without being drained.
func (l *Ledger) Clear() {
	for _, rec := range l.records {
		rec.releaseSnapshot()
	}
	l.reset()
}

func (l *Ledger) reset() {
	l.records = nil
	l.touched = make(map[document.Item]struct{})
	l.err = nil
}

// createModified records a Modify of the item's logical parent, taking
// ownership of snapshot. If the parent already has a record in this
// transaction the call is a no-op and the snapshot is released immediately:
// the first snapshot wins, so the undo image reflects the state before the
// transaction began rather than an intermediate state.
func (l *Ledger) createModified(item, snapshot document.Item, flags Flag, screen document.Screen) *Ledger {
	parent := parentOf(item)

	if l.isTouched(parent) {
		release(snapshot)
		return l
	}

	l.makeEntry(parent, Change{Kind: Modify, Flags: flags}, snapshot, screen)
	return l
}

// makeEntry appends a record and marks the item touched. If the item is
// already touched, every existing record for the exact same (item, screen)
// pair is superseded first: dropped from the ledger with its snapshot
// released. Records for the same item on other screens are left alone.
func (l *Ledger) makeEntry(item document.Item, change Change, snapshot document.Item, screen document.Screen) {
	if (snapshot != nil) != (change.Kind == Modify) {
		panic("commit: a snapshot must accompany a Modify entry and nothing else")
	}

	if l.isTouched(item) {
		kept := l.records[:0]
		for _, rec := range l.records {
			if rec.Item == item && rec.Screen == screen {
				rec.releaseSnapshot()
				continue
			}
			kept = append(kept, rec)
		}
		l.records = kept
	}

	l.records = append(l.records, Record{
		Item:     item,
		Screen:   screen,
		Change:   change,
		Snapshot: snapshot,
	})

	if l.touched == nil {
		l.touched = make(map[document.Item]struct{})
	}
	l.touched[item] = struct{}{}
}

// findEntry returns the first record matching the exact (item, screen)
// pair, or nil. Lookup is container-scoped, unlike the touched set, so the
// same item can be tracked independently per open view.
func (l *Ledger) findEntry(item document.Item, screen document.Screen) *Record {
	for i := range l.records {
		if l.records[i].Item == item && l.records[i].Screen == screen {
			return &l.records[i]
		}
	}
	return nil
}

func (l *Ledger) isTouched(item document.Item) bool {
	_, ok := l.touched[item]
	return ok
}

func (l *Ledger) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

// parentOf resolves the logical parent modify tracking collapses onto.
// A nil parent means the item is its own parent.
func parentOf(item document.Item) document.Item {
	if parent := item.Parent(); parent != nil {
		return parent
	}
	return item
}
