package edit

import "github.com/ethitter/gutenberg/richtext"

// Intent is a user edit intent delivered by the host. Intents are
// ephemeral: constructed per input event, consumed by one engine call, and
// discarded with its result.
type Intent interface {
	isIntent()
}

// EnterIntent is the Enter key.
type EnterIntent struct {
	// ShiftKey reports whether Shift was held.
	ShiftKey bool
}

func (EnterIntent) isIntent() {}

// DeleteIntent is the Backspace or Delete key.
type DeleteIntent struct {
	// Forward distinguishes Delete (true) from Backspace (false).
	Forward bool
	// ActiveFormats is the formatting context active at the caret. A
	// non-empty context means the key edits formatting, not structure, and
	// the engine declines to intercept.
	ActiveFormats []richtext.Format
}

func (DeleteIntent) isIntent() {}

// PasteIntent is a paste event.
type PasteIntent struct {
	// HTML is the clipboard markup, possibly empty.
	HTML string
	// PlainText is the clipboard plain text, possibly empty.
	PlainText string
	// Files holds host references (URLs or names) for pasted files.
	Files []string
	// Internal marks content copied from the same kind of editing surface;
	// it is trusted and parsed directly without the clipboard parser.
	Internal bool
	// ActiveFormats is applied onto the inserted fragment so formatting
	// toggled but not yet typed carries onto the pasted content.
	ActiveFormats []richtext.Format
}

func (PasteIntent) isIntent() {}

// PrefixCheckIntent asks whether the text before the caret completes a
// registered prefix transform. Hosts issue it after insertions that could
// complete a token, typically a typed space.
type PrefixCheckIntent struct{}

func (PrefixCheckIntent) isIntent() {}
