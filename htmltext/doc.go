// Package htmltext converts between HTML fragments and rich-text values.
//
// It is the default implementation of the parser and serializer contracts
// the edit package consumes; hosts with their own sanitizing pipeline can
// substitute theirs. Codec bundles both directions behind the contract
// interfaces.
//
// The conversion is intentionally structural, not sanitizing: every element
// becomes a format, every attribute is kept. Run untrusted markup through a
// sanitizer before parsing it here.
package htmltext
