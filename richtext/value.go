package richtext

// LineSeparator is the reserved code point marking sub-paragraph boundaries
// within a single multiline value (e.g. list items inside one list block).
// It is distinct from '\n', which represents a soft line break.
const LineSeparator = ' '

// Value is an immutable formatted-text buffer with a selection.
//
// Text holds the logical content as runes. Formats has the same length as
// Text; Formats[i] is the stack of formats applied to Text[i], outermost
// first, with a nil or empty stack meaning unformatted. Start and End mark
// the selection as rune offsets into Text; Start == End is a collapsed
// caret.
//
// Value is a value type: operations never mutate their receiver or its
// backing slices, they return fresh values. Callers must treat the Text and
// Formats slices of any Value they did not build themselves as read-only.
type Value struct {
	Text    []rune
	Formats [][]Format
	Start   int
	End     int

	// MultilineTag, when non-empty, marks that top-level segments separated
	// by LineSeparator represent repeated wrapper elements of this tag
	// (e.g. "li" for list items).
	MultilineTag string
}

// New returns an empty value with a collapsed caret at offset 0.
func New() Value {
	return Value{}
}

// FromString returns an unformatted value holding s, with a collapsed caret
// at offset 0.
func FromString(s string) Value {
	text := []rune(s)
	return Value{
		Text:    text,
		Formats: make([][]Format, len(text)),
	}
}

// NewValue builds a value from explicit parts. The formats table may be nil,
// in which case an unformatted table of matching length is allocated.
func NewValue(text string, formats [][]Format, start, end int) (Value, error) {
	runes := []rune(text)
	if formats == nil {
		formats = make([][]Format, len(runes))
	}
	v := Value{Text: runes, Formats: formats, Start: start, End: end}
	if err := v.Validate(); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Validate checks the value's invariants: the formats table matches the text
// length and 0 <= Start <= End <= len(Text). A violation is returned as an
// *InvariantError and indicates a caller bug.
func (v Value) Validate() error {
	if len(v.Formats) != len(v.Text) {
		return invariant("validate", ErrLengthMismatch)
	}
	if v.Start < 0 || v.End > len(v.Text) {
		return invariant("validate", ErrOffsetOutOfRange)
	}
	if v.Start > v.End {
		return invariant("validate", ErrRangeInvalid)
	}
	return nil
}

// String returns the plain text content.
func (v Value) String() string {
	return string(v.Text)
}

// Len returns the content length in runes.
func (v Value) Len() int {
	return len(v.Text)
}

// IsEmpty reports whether the value contains no text. Formats play no part.
func (v Value) IsEmpty() bool {
	return len(v.Text) == 0
}

// IsCollapsed reports whether the selection has no extent.
func (v Value) IsCollapsed() bool {
	return v.Start == v.End
}

// IsEmptyLine reports whether the multiline segment containing the caret is
// empty. The segment is bounded by LineSeparator characters or the text
// edges. On a non-collapsed selection the segment containing Start is used.
func (v Value) IsEmptyLine() bool {
	segStart := 0
	for i := min(v.Start, len(v.Text)) - 1; i >= 0; i-- {
		if v.Text[i] == LineSeparator {
			segStart = i + 1
			break
		}
	}
	segEnd := len(v.Text)
	for i := v.Start; i < len(v.Text); i++ {
		if v.Text[i] == LineSeparator {
			segEnd = i
			break
		}
	}
	return segStart >= segEnd
}

// WithSelection returns a copy of the value with the selection set to
// [start, end]. Offsets are not validated here; the next operation on the
// value will reject out-of-range offsets.
func (v Value) WithSelection(start, end int) Value {
	v.Start = start
	v.End = end
	return v
}

// WithMultilineTag returns a copy of the value marked as multiline with the
// given wrapper tag.
func (v Value) WithMultilineTag(tag string) Value {
	v.MultilineTag = tag
	return v
}

// FormatsAt returns the format stack applied at offset i, outermost first.
// The returned slice must be treated as read-only.
func (v Value) FormatsAt(i int) ([]Format, error) {
	if i < 0 || i >= len(v.Text) {
		return nil, invariant("formats at", ErrOffsetOutOfRange)
	}
	return v.Formats[i], nil
}
