// Package errors provides structured error types for the scale codec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, buffer offset,
// the offending byte where relevant, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindUnknownVariant).
//		Path("GasNode", "[variant]").
//		Byte(0x2a).
//		Detail("no variant declared for discriminant").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnexpectedEOF(off, need, have)
//	err := errors.UnknownVariant(path, tag)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under Is when their Phase and Kind agree, so
// callers can classify failures without string inspection.
package errors
