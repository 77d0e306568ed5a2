// Package shape describes wire layouts as data.
//
// A Shape is an immutable description of one type's SCALE layout:
// primitives, compact integers, fixed byte arrays, arrays, sequences,
// tuples, Option, Result, structs (ordered fields with per-field skip),
// and tagged unions with explicitly declared discriminant bytes.
//
// Shapes are defined once, at type-definition time, and never mutated.
// Generic definitions reference their type parameters with Param(i);
// Instantiate resolves them to concrete shapes at the call site and
// memoizes each (definition, bindings) pair for the life of the process.
//
// The dynamic package walks shapes to decode buffers whose static type is
// not known at compile time. Generated types with compiled-in codecs only
// need shapes when they register themselves for that diagnostic path.
package shape
