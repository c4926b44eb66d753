package richtext

import "regexp"

// Slice returns a new value containing only the rune range [from, to), with
// formats sliced correspondingly and the selection clamped into range.
func (v Value) Slice(from, to int) (Value, error) {
	if err := v.Validate(); err != nil {
		return Value{}, err
	}
	if from < 0 || to > len(v.Text) {
		return Value{}, invariant("slice", ErrOffsetOutOfRange)
	}
	if from > to {
		return Value{}, invariant("slice", ErrRangeInvalid)
	}
	out := Value{
		Text:         append([]rune(nil), v.Text[from:to]...),
		Formats:      cloneFormats(v.Formats[from:to]),
		Start:        clamp(v.Start-from, 0, to-from),
		End:          clamp(v.End-from, 0, to-from),
		MultilineTag: v.MultilineTag,
	}
	return out, nil
}

// Split cuts the value at the selection and returns the two halves. The
// before half holds [0, Start) with a collapsed caret at its end; the after
// half holds [End, len) with a collapsed caret at offset 0. A non-collapsed
// selection is dropped: the selected range appears in neither half.
func (v Value) Split() (before, after Value, err error) {
	if err := v.Validate(); err != nil {
		return Value{}, Value{}, err
	}
	before, err = v.Slice(0, v.Start)
	if err != nil {
		return Value{}, Value{}, err
	}
	before = before.WithSelection(before.Len(), before.Len())
	after, err = v.Slice(v.End, len(v.Text))
	if err != nil {
		return Value{}, Value{}, err
	}
	after = after.WithSelection(0, 0)
	return before, after, nil
}

// Insert replaces the selected range with the fragment's content and
// formats, leaving a collapsed caret at the end of the inserted content.
// The fragment's own selection and multiline tag are ignored.
func (v Value) Insert(fragment Value) (Value, error) {
	if err := v.Validate(); err != nil {
		return Value{}, err
	}
	if len(fragment.Formats) != len(fragment.Text) {
		return Value{}, invariant("insert", ErrLengthMismatch)
	}
	text := make([]rune, 0, len(v.Text)-(v.End-v.Start)+len(fragment.Text))
	text = append(text, v.Text[:v.Start]...)
	text = append(text, fragment.Text...)
	text = append(text, v.Text[v.End:]...)

	formats := make([][]Format, 0, len(text))
	formats = append(formats, cloneFormats(v.Formats[:v.Start])...)
	formats = append(formats, cloneFormats(fragment.Formats)...)
	formats = append(formats, cloneFormats(v.Formats[v.End:])...)

	caret := v.Start + len(fragment.Text)
	return Value{
		Text:         text,
		Formats:      formats,
		Start:        caret,
		End:          caret,
		MultilineTag: v.MultilineTag,
	}, nil
}

// InsertString inserts plain unformatted text at the selection.
func (v Value) InsertString(s string) (Value, error) {
	runes := []rune(s)
	return v.Insert(Value{
		Text:    runes,
		Formats: make([][]Format, len(runes)),
	})
}

// Replace substitutes every match of pattern in the text with the
// replacement string. When a match and its replacement are both a single
// rune, the produced character keeps the format stack of the character it
// replaced; otherwise the produced characters are unformatted. Selection
// offsets are shifted to track the substitutions, clamping offsets that fall
// inside a replaced range to its start.
func (v Value) Replace(pattern *regexp.Regexp, replacement string) (Value, error) {
	if err := v.Validate(); err != nil {
		return Value{}, err
	}
	text := string(v.Text)
	matches := pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return v, nil
	}

	// Byte offset -> rune offset lookup for match boundaries.
	runeAt := make(map[int]int, len(text)+1)
	r := 0
	for b := range text {
		runeAt[b] = r
		r++
	}
	runeAt[len(text)] = r

	replRunes := []rune(replacement)
	outText := make([]rune, 0, len(v.Text))
	outFormats := make([][]Format, 0, len(v.Formats))
	subs := make([][2]int, 0, len(matches)) // replaced ranges in rune offsets
	prev := 0
	for _, m := range matches {
		from, to := runeAt[m[0]], runeAt[m[1]]
		outText = append(outText, v.Text[prev:from]...)
		outFormats = append(outFormats, cloneFormats(v.Formats[prev:from])...)
		outText = append(outText, replRunes...)
		single := to-from == 1 && len(replRunes) == 1
		for range replRunes {
			if single {
				outFormats = append(outFormats, append([]Format(nil), v.Formats[from]...))
			} else {
				outFormats = append(outFormats, nil)
			}
		}
		subs = append(subs, [2]int{from, to})
		prev = to
	}
	outText = append(outText, v.Text[prev:]...)
	outFormats = append(outFormats, cloneFormats(v.Formats[prev:])...)

	start := mapOffset(v.Start, subs, len(replRunes))
	end := mapOffset(v.End, subs, len(replRunes))
	if start > end {
		end = start
	}
	return Value{
		Text:         outText,
		Formats:      outFormats,
		Start:        clamp(start, 0, len(outText)),
		End:          clamp(end, 0, len(outText)),
		MultilineTag: v.MultilineTag,
	}, nil
}

// mapOffset translates a selection offset from the original text into the
// substituted text. Offsets inside a replaced range clamp to the start of
// its replacement. subs holds the replaced ranges in ascending order; n is
// the replacement length in runes.
func mapOffset(offset int, subs [][2]int, n int) int {
	delta := 0
	for _, s := range subs {
		from, to := s[0], s[1]
		if offset <= from {
			break
		}
		if offset < to {
			return from + delta
		}
		delta += n - (to - from)
	}
	return offset + delta
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
