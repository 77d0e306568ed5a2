// Package dynamic decodes SCALE bytes whose static type is not known at
// compile time.
//
// It walks the same shape descriptions the static codec is generated
// from, but builds a dynamically-tagged Value tree (struct-of-fields,
// enum-variant, primitive) instead of a concrete Go value. Explorer and
// diagnostic tooling uses it when all it has is a textual description of
// the type.
//
// # Key Types
//
//	Value     - one node of the decoded tree
//	Registry  - type name -> shape lookup for decode-by-name
//
// # Decoding Flow
//
//  1. Obtain a concrete shape (from the types catalog, or
//     shape.Instantiate for a generic definition).
//  2. dynamic.Decode(data, shape) -> Value, or
//     registry.DecodeAs(data, "TypeName") when only a name is known.
//
// Failures carry the offending field/variant path, e.g.:
//
//	[decode] unknown_variant at GasNode.[variant]: byte 0x2a
//
// Encode is the symmetric direction: a Value checked against a shape and
// written back to bytes. It is used by tooling that patches decoded
// values and re-submits them.
//
// The decoder shares no state between calls; a Registry is safe for
// concurrent use after registration.
package dynamic
