package edit

// Capabilities declares which structural operations the host can apply for
// the current call. The decision tree consults only these flags, so its
// dependence on host features is explicit and testable over every
// combination.
type Capabilities struct {
	// Replace: the host can replace this unit with a list of blocks.
	Replace bool
	// Split: the host can split this unit into sibling units.
	Split bool
	// SplitAtEnd: the host can create a new empty sibling after this unit
	// when the caret sits at the end of the text.
	SplitAtEnd bool
	// SplitMiddle: the host supplies a middle block when a split produces
	// one (e.g. an empty paragraph between the halves).
	SplitMiddle bool
	// Merge: the host can merge this unit with a neighbor.
	Merge bool
	// Remove: the host can remove this unit.
	Remove bool
}
