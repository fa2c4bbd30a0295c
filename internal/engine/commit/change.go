package commit

import (
	"fmt"
	"strings"
)

// Kind categorizes a staged change.
type Kind uint8

const (
	// NoChange is the zero value, reported for items with no record.
	NoChange Kind = iota

	// Add stages a newly created item.
	Add

	// Remove stages the deletion of an item.
	Remove

	// Modify stages an in-place change, backed by a pre-change snapshot.
	Modify
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case NoChange:
		return "no change"
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Modify:
		return "modify"
	default:
		return "unknown"
	}
}

// Flag is a set of modifiers attachable to any change kind.
type Flag uint8

const (
	// FlagDone marks a change that has already been applied to the
	// document, so committing it only records history. Incompatible
	// with Modify.
	FlagDone Flag = 1 << iota

	// FlagAutoRecalc requests a connectivity recalculation after the
	// transaction commits.
	FlagAutoRecalc
)

// Has reports whether every flag in mask is set.
func (f Flag) Has(mask Flag) bool {
	return f&mask == mask
}

// String returns a human-readable representation of the flag set.
func (f Flag) String() string {
	if f == 0 {
		return "none"
	}

	var parts []string
	if f.Has(FlagDone) {
		parts = append(parts, "done")
	}
	if f.Has(FlagAutoRecalc) {
		parts = append(parts, "autorecalc")
	}
	if rest := f &^ (FlagDone | FlagAutoRecalc); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// Change pairs a kind with its modifier flags. Kind and flags are
// independent except that Modify and FlagDone are mutually exclusive.
type Change struct {
	Kind  Kind
	Flags Flag
}

// With returns a copy of the change with the given flags added.
func (c Change) With(flags Flag) Change {
	c.Flags |= flags
	return c
}

// Done reports whether the change has already been applied to the document.
func (c Change) Done() bool {
	return c.Flags.Has(FlagDone)
}

// Staged reports whether the change represents a staged record, as opposed
// to the zero "no change" result of a status query.
func (c Change) Staged() bool {
	return c.Kind != NoChange
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	if c.Flags == 0 {
		return c.Kind.String()
	}
	return fmt.Sprintf("%v (%v)", c.Kind, c.Flags)
}
