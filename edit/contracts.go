package edit

import (
	"github.com/ethitter/gutenberg/block"
	"github.com/ethitter/gutenberg/richtext"
)

// PasteMode selects how the clipboard parser shapes its output.
type PasteMode uint8

const (
	// ModeInline asks for a single inline HTML string.
	ModeInline PasteMode = iota
	// ModeBlocks asks for a list of block payloads.
	ModeBlocks
	// ModeAuto lets the parser pick based on the content.
	ModeAuto
)

// String returns the mode name.
func (m PasteMode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	case ModeBlocks:
		return "blocks"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// RichTextParser parses trusted HTML into a rich-text value.
// htmltext.Codec is the default implementation.
type RichTextParser interface {
	Parse(markup, multilineTag string, preserveWhitespace bool) (richtext.Value, error)
}

// Serializer renders a rich-text value back to HTML.
// htmltext.Codec is the default implementation.
type Serializer interface {
	Serialize(v richtext.Value, multilineTag string) (string, error)
}

// ClipboardRequest is the input to the external clipboard content parser.
type ClipboardRequest struct {
	// HTML is the paste payload's markup, possibly empty.
	HTML string
	// PlainText is the paste payload's plain text, possibly empty.
	PlainText string
	// Mode shapes the parser output.
	Mode PasteMode
	// ContextTag is the surface's multiline wrapper tag, empty outside
	// multiline mode.
	ContextTag string
	// PreserveWhitespace keeps whitespace runs intact.
	PreserveWhitespace bool
}

// ClipboardContent is the clipboard parser's output: either a single inline
// HTML string or a list of block payloads.
type ClipboardContent struct {
	// Inline, when true, means InlineHTML holds the result.
	Inline bool
	// InlineHTML is the inline markup result.
	InlineHTML string
	// Blocks is the block-list result.
	Blocks []block.Payload
}

// InlineContent wraps an inline HTML string as parser output.
func InlineContent(markup string) ClipboardContent {
	return ClipboardContent{Inline: true, InlineHTML: markup}
}

// BlocksContent wraps a block list as parser output.
func BlocksContent(blocks ...block.Payload) ClipboardContent {
	return ClipboardContent{Blocks: blocks}
}

// ClipboardParser converts raw clipboard markup and text into editor
// content. It owns sanitization and MIME interpretation; the engine only
// routes its output.
type ClipboardParser interface {
	Parse(req ClipboardRequest) (ClipboardContent, error)
}

// Cleaner strips editor-only formatting markers from a value before the
// engine analyzes it. Hosts without such markers leave it unset.
type Cleaner func(richtext.Value) richtext.Value
