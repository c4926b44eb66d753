package htmltext

import "github.com/ethitter/gutenberg/richtext"

// Codec implements the edit package's RichTextParser and Serializer
// contracts with Parse and Serialize.
type Codec struct{}

// Parse implements the rich-text parser contract.
func (Codec) Parse(markup, multilineTag string, preserveWhitespace bool) (richtext.Value, error) {
	return Parse(markup, multilineTag, preserveWhitespace)
}

// Serialize implements the serializer contract.
func (Codec) Serialize(v richtext.Value, multilineTag string) (string, error) {
	return Serialize(v, multilineTag)
}
