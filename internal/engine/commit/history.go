package commit

import (
	"fmt"

	"github.com/dshills/drawstorm/internal/engine/document"
)

// HistoryStatus is the change classification used by externally built
// history lists, produced by editor paths that compute their own undo
// snapshots before handing items to the ledger.
type HistoryStatus uint8

const (
	// StatusUnspecified defers to the default change supplied at import.
	StatusUnspecified HistoryStatus = iota

	// StatusNewItem marks an item created during the transaction.
	StatusNewItem

	// StatusDeleted marks an item removed during the transaction.
	StatusDeleted

	// StatusChanged marks an item modified in place.
	StatusChanged
)

// String returns a human-readable representation of the status.
func (s HistoryStatus) String() string {
	switch s {
	case StatusUnspecified:
		return "unspecified"
	case StatusNewItem:
		return "new item"
	case StatusDeleted:
		return "deleted"
	case StatusChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// HistoryEntry is one element of an externally built history list.
type HistoryEntry struct {
	// Item identifies the affected object.
	Item document.Item

	// Status classifies the change; StatusUnspecified adopts the default
	// change supplied to StageHistory.
	Status HistoryStatus

	// Snapshot is an optional pre-made undo copy. When present the entry
	// must describe a modification, and the ledger adopts the copy as-is
	// instead of cloning the item again.
	Snapshot document.Item
}

// kindForStatus maps an external history status to a ledger change kind.
// StatusUnspecified must be resolved by the caller before mapping; any
// unknown status is a caller bug.
func kindForStatus(s HistoryStatus) Kind {
	switch s {
	case StatusNewItem:
		return Add
	case StatusDeleted:
		return Remove
	case StatusChanged:
		return Modify
	default:
		panic(fmt.Sprintf("commit: cannot stage history status %v", s))
	}
}
