// Package block defines the opaque block payloads that split and replace
// decisions carry. The engine never interprets a payload beyond carrying
// it; the host creates real editor blocks from payloads after applying a
// decision.
package block

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Payload describes one block to be created by the host.
type Payload struct {
	// Name is the block type name, e.g. "core/paragraph".
	Name string
	// ClientID uniquely identifies this payload instance.
	ClientID string
	// Attributes is the block's attribute document as JSON. Nil means no
	// attributes.
	Attributes json.RawMessage
	// InnerHTML is the block's inner content markup.
	InnerHTML string
}

// New creates a payload with a generated client ID.
func New(name string, attributes json.RawMessage, innerHTML string) Payload {
	return Payload{
		Name:       name,
		ClientID:   uuid.NewString(),
		Attributes: attributes,
		InnerHTML:  innerHTML,
	}
}

// Attribute returns the attribute at the given gjson path.
func (p Payload) Attribute(path string) gjson.Result {
	return gjson.GetBytes(p.Attributes, path)
}

// WithAttribute returns a copy of the payload with the attribute at the
// given path set. The receiver's attribute document is not modified.
func (p Payload) WithAttribute(path string, value any) (Payload, error) {
	attrs, err := sjson.SetBytes(p.Attributes, path, value)
	if err != nil {
		return Payload{}, fmt.Errorf("setting attribute %s: %w", path, err)
	}
	p.Attributes = attrs
	return p, nil
}
