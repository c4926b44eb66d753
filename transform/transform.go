package transform

import (
	"errors"
	"regexp"

	"github.com/ethitter/gutenberg/block"
)

// Errors returned by transform registration.
var (
	ErrNoBuilder        = errors.New("transform has no builder")
	ErrMissingTrigger   = errors.New("transform has no prefix or pattern")
	ErrAmbiguousTrigger = errors.New("transform has both prefix and pattern")
)

// Kind distinguishes how a transform is triggered.
type Kind uint8

const (
	// KindPrefix matches a whitespace-terminated token typed before the
	// caret, e.g. "*" for a list.
	KindPrefix Kind = iota
	// KindEnter matches the value's full plain text when Enter is pressed,
	// e.g. "---" for a separator.
	KindEnter
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPrefix:
		return "prefix"
	case KindEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// Builder produces a block payload from the matched content. For prefix
// transforms the content is the serialized value after the caret; for enter
// transforms it is the value's plain text.
type Builder func(content string) (block.Payload, error)

// Transform converts a typed pattern into a replacement block. Exactly one
// trigger is set per kind: Prefix for KindPrefix, Pattern for KindEnter.
type Transform struct {
	// Name identifies the transform, e.g. "core/list".
	Name string
	// Kind selects the trigger mechanism.
	Kind Kind
	// Prefix is the literal token a KindPrefix transform matches.
	Prefix string
	// Pattern is the expression a KindEnter transform matches against the
	// value's plain text.
	Pattern *regexp.Regexp
	// Build produces the replacement block.
	Build Builder
}

// validate checks that the transform is well formed for its kind.
func (t Transform) validate() error {
	if t.Build == nil {
		return ErrNoBuilder
	}
	switch t.Kind {
	case KindPrefix:
		if t.Prefix == "" {
			return ErrMissingTrigger
		}
		if t.Pattern != nil {
			return ErrAmbiguousTrigger
		}
	case KindEnter:
		if t.Pattern == nil {
			return ErrMissingTrigger
		}
		if t.Prefix != "" {
			return ErrAmbiguousTrigger
		}
	}
	return nil
}
