package richtext

// Format describes one formatting element applied to a character, such as
// bold, italic, or a link. Attributes carry element attributes for formats
// that have them (e.g. a link's href).
type Format struct {
	// Type is the format's tag name, e.g. "strong", "em", "a".
	Type string
	// Attributes holds element attributes, nil for formats without any.
	Attributes map[string]string
}

// NewFormat creates a format with no attributes.
func NewFormat(formatType string) Format {
	return Format{Type: formatType}
}

// Attribute returns the named attribute and whether it is present.
func (f Format) Attribute(name string) (string, bool) {
	v, ok := f.Attributes[name]
	return v, ok
}

// Equal reports whether two formats have the same type and attributes.
func (f Format) Equal(other Format) bool {
	if f.Type != other.Type {
		return false
	}
	if len(f.Attributes) != len(other.Attributes) {
		return false
	}
	for k, v := range f.Attributes {
		if ov, ok := other.Attributes[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// cloneFormats deep-copies a per-character format table.
func cloneFormats(formats [][]Format) [][]Format {
	if formats == nil {
		return nil
	}
	out := make([][]Format, len(formats))
	for i, stack := range formats {
		if len(stack) == 0 {
			continue
		}
		out[i] = append([]Format(nil), stack...)
	}
	return out
}

// AddActiveFormats returns a copy of the value with the active formats
// prepended ahead of each character's existing format stack. Active formats
// take outer-wrapping priority; existing formats are preserved as inner.
//
// The formats are always prepended, never deduplicated: applying the same
// active formats twice doubles the outer stacks. Apply this only to freshly
// created or pasted fragments, never to a value already in the document.
func (v Value) AddActiveFormats(active ...Format) Value {
	if len(active) == 0 {
		return v
	}
	formats := make([][]Format, len(v.Formats))
	for i, stack := range v.Formats {
		merged := make([]Format, 0, len(active)+len(stack))
		merged = append(merged, active...)
		merged = append(merged, stack...)
		formats[i] = merged
	}
	out := v
	out.Formats = formats
	return out
}
