// Package transform provides the registry of typed-pattern transforms the
// edit-decision engine consults.
//
// A transform pairs a trigger with a content builder. Prefix transforms
// fire when a whitespace-terminated token is typed before the caret ("* "
// becomes a list); enter transforms fire when the Enter key is pressed on a
// value whose plain text matches a pattern ("---" becomes a separator).
// Matching is first-registered-wins and a matched transform is consumed
// exactly once per edit intent; "no match" is normal control flow, not an
// error.
//
// Builders may be plain Go functions or, via Script, functions defined in a
// sandboxed Lua script.
package transform
