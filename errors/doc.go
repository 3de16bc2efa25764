// Package errors provides structured error types for strview.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the encoding, buffer offset and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
//		Encoding("UTF-8").
//		Offset(12).
//		Detail("span of %d bytes exceeds buffer", 40).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseDecode, 12, 40, 32)
//	err := errors.UnknownEncoding(errors.PhaseEncode, "EBCDIC")
//
// All errors implement the standard error interface and support errors.Is/As.
// The ErrOutOfRange and ErrUnknownEncoding sentinels match by kind in any phase.
package errors
