// Package types holds a representative slice of the runtime's generated
// type catalog.
//
// Each type mirrors one on-chain definition: its field order, its
// discriminant table, and any compact or skip positions are exactly what
// the runtime metadata declares. The types carry no behavior beyond the
// codec pair: Encode writes the value to a Writer, Decode (a method on
// concrete types, a DecodeX function on generic ones) reconstructs it
// from a Reader.
//
// Tagged unions follow two patterns:
//
//   - Payload-free sparse enums (SuccessReplyReason, ...) are uint8-backed
//     constants; decode rejects any byte outside the declared table.
//   - Enums with payloads (Phase, GasNode, ...) are interfaces with one
//     struct per variant; the variant's declared discriminant byte is
//     written by its Encode and matched by the enum's decode function.
//
// Generic definitions (GasNode, GasMultiplier, NodeLock) take their type
// parameters at the call site; decode functions infer the pointer side of
// each parameter through the codec.Ptr constraint.
//
// RegisterAll installs the catalog's shapes into a dynamic.Registry for
// the self-describing decode path used by explorer tooling.
package types
