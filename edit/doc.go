// Package edit implements the rich-text edit-decision engine.
//
// A Controller takes the current immutable value plus one edit intent
// (Enter, Backspace/Delete, a paste payload, or a typed-prefix check) and
// returns a Result: an updated value, a split or replace decision for the
// host to apply, a merge or remove signal toward a neighboring unit, or an
// explicit refusal to intercept. The engine never touches the host's
// rendering surface or store; host abilities are passed in as explicit
// Capabilities per call, and external services (rich-text parsing,
// serialization, clipboard interpretation) are consumed behind small
// interfaces.
//
// Every decision function is synchronous, holds no state across calls, and
// is total over well-formed values; a malformed value yields a KindError
// result carrying a richtext.InvariantError.
package edit
