package commit

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{NoChange, "no change"},
		{Add, "add"},
		{Remove, "remove"},
		{Modify, "modify"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestFlagString(t *testing.T) {
	tests := []struct {
		flags    Flag
		expected string
	}{
		{0, "none"},
		{FlagDone, "done"},
		{FlagAutoRecalc, "autorecalc"},
		{FlagDone | FlagAutoRecalc, "done|autorecalc"},
		{Flag(0x10), "0x10"},
		{FlagDone | Flag(0x10), "done|0x10"},
	}

	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.expected {
			t.Errorf("Flag(%d).String() = %q, want %q", tt.flags, got, tt.expected)
		}
	}
}

func TestFlagHas(t *testing.T) {
	f := FlagDone | FlagAutoRecalc

	if !f.Has(FlagDone) || !f.Has(FlagAutoRecalc) {
		t.Error("combined flags should report both members")
	}
	if !f.Has(FlagDone | FlagAutoRecalc) {
		t.Error("combined flags should report the full mask")
	}
	if Flag(0).Has(FlagDone) {
		t.Error("empty flags should report nothing")
	}
}

func TestChangeWith(t *testing.T) {
	c := Change{Kind: Add}
	done := c.With(FlagDone)

	if !done.Done() {
		t.Error("With(FlagDone) should mark the change done")
	}
	if done.Kind != Add {
		t.Error("With should preserve the kind")
	}
	if c.Done() {
		t.Error("With should not mutate the receiver")
	}
}

func TestChangeStaged(t *testing.T) {
	if (Change{}).Staged() {
		t.Error("zero change should not report as staged")
	}
	if !(Change{Kind: Remove}).Staged() {
		t.Error("remove change should report as staged")
	}
}

func TestChangeString(t *testing.T) {
	tests := []struct {
		change   Change
		expected string
	}{
		{Change{Kind: Add}, "add"},
		{Change{Kind: Remove, Flags: FlagDone}, "remove (done)"},
		{Change{Kind: Modify, Flags: FlagAutoRecalc}, "modify (autorecalc)"},
	}

	for _, tt := range tests {
		if got := tt.change.String(); got != tt.expected {
			t.Errorf("Change.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestHistoryStatusString(t *testing.T) {
	tests := []struct {
		status   HistoryStatus
		expected string
	}{
		{StatusUnspecified, "unspecified"},
		{StatusNewItem, "new item"},
		{StatusDeleted, "deleted"},
		{StatusChanged, "changed"},
		{HistoryStatus(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("HistoryStatus(%d).String() = %q, want %q", tt.status, got, tt.expected)
		}
	}
}
