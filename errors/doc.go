// Package errors provides structured error types for the bytefield library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes the field path within the
// layout tree, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindBufferUnderrun).
//		Path("header", "title").
//		Detail("need 8 bytes at offset 4, have 3").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownField(errors.PhaseValue, path, "magic")
//	err := errors.BufferUnderrun(errors.PhaseParse, path, 8, 3)
//
// All errors implement the standard error interface and support
// errors.Is/As; Is matches on Phase and Kind.
package errors
