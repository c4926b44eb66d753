package edit

import (
	"fmt"

	"github.com/ethitter/gutenberg/block"
	"github.com/ethitter/gutenberg/richtext"
)

// Kind indicates the decision a result carries.
type Kind uint8

const (
	// KindUnhandled means the engine declines to intercept the event; the
	// host's default behavior applies.
	KindUnhandled Kind = iota
	// KindNoOp means the engine consumed the event and nothing changes.
	KindNoOp
	// KindUpdated carries a new value to swap in.
	KindUpdated
	// KindSplit carries a split decision.
	KindSplit
	// KindReplace carries a full-replace decision.
	KindReplace
	// KindMerge asks the host to merge this unit with a neighbor. The
	// result may additionally carry a remove signal.
	KindMerge
	// KindRemove asks the host to remove this unit.
	KindRemove
	// KindSplitAtEnd asks the host to create a new empty sibling unit
	// after this one.
	KindSplitAtEnd
	// KindError reports a programming error (malformed value).
	KindError
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnhandled:
		return "unhandled"
	case KindNoOp:
		return "no-op"
	case KindUpdated:
		return "updated"
	case KindSplit:
		return "split"
	case KindReplace:
		return "replace"
	case KindMerge:
		return "merge"
	case KindRemove:
		return "remove"
	case KindSplitAtEnd:
		return "split-at-end"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Direction indicates which neighboring unit a merge or remove acts toward.
type Direction int8

const (
	// Backward acts toward the previous unit.
	Backward Direction = -1
	// Forward acts toward the next unit.
	Forward Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// CaretHint tells the host where to place the caret in the focused block
// after applying a split or replace decision.
type CaretHint int8

const (
	// CaretAtStart places the caret at the start of the unit.
	CaretAtStart CaretHint = iota
	// CaretAtEnd places the caret at the end of the unit.
	CaretAtEnd
)

// ReplaceDecision replaces the current unit with a list of blocks.
type ReplaceDecision struct {
	// Blocks are the replacement payloads, in order.
	Blocks []block.Payload
	// FocusIndex selects the block that receives selection focus.
	FocusIndex int
	// Caret tells where in the focused block the caret lands.
	Caret CaretHint
}

// Result is the engine's decision for one edit intent. Exactly one member
// identified by Kind is meaningful, except that a merge may additionally
// carry a remove signal (see RemovesUnit).
type Result struct {
	// Kind identifies the decision.
	Kind Kind
	// Err is the failure for KindError results.
	Err error
	// Value is the new value for KindUpdated results.
	Value richtext.Value
	// Split is the decision for KindSplit results.
	Split *SplitDecision
	// Replace is the decision for KindReplace results.
	Replace *ReplaceDecision
	// MergeDirection applies to KindMerge results.
	MergeDirection Direction
	// RemoveDirection applies to KindRemove results and to merges with
	// RemovesUnit set.
	RemoveDirection Direction
	// RemovesUnit marks a merge that also removes the (empty) unit.
	RemovesUnit bool
	// Automatic marks the change as engine-initiated rather than typed, so
	// the host can group it for undo as a single automatic change.
	Automatic bool
}

// IsError reports whether the result is a failure.
func (r Result) IsError() bool {
	return r.Kind == KindError
}

// Unhandled returns a result declining to intercept the event.
func Unhandled() Result {
	return Result{Kind: KindUnhandled}
}

// NoOp returns a result that consumes the event without any change.
func NoOp() Result {
	return Result{Kind: KindNoOp}
}

// Updated returns a result carrying a new value.
func Updated(v richtext.Value) Result {
	return Result{Kind: KindUpdated, Value: v}
}

// Split returns a result carrying a split decision.
func Split(d SplitDecision) Result {
	return Result{Kind: KindSplit, Split: &d}
}

// Replace returns a result carrying a replace decision.
func Replace(d ReplaceDecision) Result {
	return Result{Kind: KindReplace, Replace: &d}
}

// Merged returns a merge result toward the given neighbor.
func Merged(d Direction) Result {
	return Result{Kind: KindMerge, MergeDirection: d}
}

// Removed returns a remove result toward the given neighbor.
func Removed(d Direction) Result {
	return Result{Kind: KindRemove, RemoveDirection: d}
}

// SplitAtEnd returns a result asking for a new empty sibling unit.
func SplitAtEnd() Result {
	return Result{Kind: KindSplitAtEnd}
}

// Error returns a failure result.
func Error(err error) Result {
	return Result{Kind: KindError, Err: err}
}

// Errorf returns a failure result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Kind: KindError, Err: fmt.Errorf(format, args...)}
}

// WithRemove returns a copy of the result that additionally signals
// removing the unit toward the given neighbor.
func (r Result) WithRemove(d Direction) Result {
	r.RemovesUnit = true
	r.RemoveDirection = d
	return r
}

// WithAutomatic returns a copy of the result flagged as an automatic
// change.
func (r Result) WithAutomatic() Result {
	r.Automatic = true
	return r
}
