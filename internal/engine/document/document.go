package document

// Item is the identity of one mutable document object. Implementations must
// be comparable (pointer-shaped values are the norm): the engine uses items
// as map keys and compares them with ==, so two Item values are the same
// object exactly when they compare equal.
//
// Items are borrowed, never owned. The host document model guarantees they
// stay alive for the duration of the edit transaction that references them.
type Item interface {
	// Parent returns the logical parent that modification tracking collapses
	// onto. Nested sub-objects (a pin on a symbol, a field on a label) return
	// their enclosing object; top-level items return themselves. A nil result
	// is treated the same as returning the item itself.
	Parent() Item

	// Clone returns an owned deep copy of the item's current state, used as
	// a pre-change snapshot for undo. Returns nil if the copy cannot be
	// produced.
	Clone() Item
}

// Screen identifies the logical container an item lives in: one sheet, one
// open view, one page. The engine treats it as an opaque handle and only
// compares it with ==, so the dynamic type must be comparable. nil means
// "no container context".
type Screen any

// Releaser is implemented by items whose deep copies hold resources that
// need explicit cleanup. When the engine discards a snapshot it owns, it
// calls Release exactly once if the snapshot implements this interface.
type Releaser interface {
	Release()
}
