// Package scale implements the binary codec used by the runtime's
// generated type catalog: little-endian fixed-width integers, compact
// integers, and length-free composites whose layout both peers know in
// advance.
//
// The module is layered:
//
//   - codec: the wire primitives. Writer/Reader, compact integers, u128,
//     and generic container helpers (Vec, Option, Result, arrays, tuples).
//   - shape: runtime layout descriptions, including generic definitions
//     with positional parameters and their memoized instantiation.
//   - dynamic: decoding bytes into a tagged value tree against a shape,
//     and encoding such trees back. Backed by a name registry for
//     decode-by-name tooling.
//   - types: a representative slice of the generated catalog (ids, the
//     gas tree, reply codes, Phase, Header), with both static codecs and
//     registered shapes.
//   - errors: the structured error type shared by every layer.
//
// This package holds the top-level Marshal/Unmarshal pair for types that
// implement the codec interfaces.
package scale
