// Package richtext provides the immutable formatted-text value model used
// by the edit-decision engine.
//
// A Value couples rune text with a per-character format stack, a selection,
// and optional multiline semantics (segments separated by LineSeparator
// that represent repeated wrapper elements, such as list items). Every
// operation is pure: the receiver is never mutated, a fresh Value is
// returned and the caller swaps its reference. This removes aliasing bugs
// between the text and formats table entirely; the two can only ever change
// together.
//
// Operations that take offsets treat out-of-range input as a programming
// error and return an *InvariantError. Everything else is total.
package richtext
