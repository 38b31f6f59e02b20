// Package errors provides structured error types for the avro-datum library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Every Kind belongs to exactly one Class, which is the coarse
// taxonomy callers branch on:
//
//	invalid_argument    wrong kind, nil datum, out-of-range index, missing key
//	resource_exhausted  allocation failure, cursor capacity exceeded
//	unsupported         operations the value model does not implement
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindTypeMismatch).
//		Path("user", "age").
//		Expected("int").
//		Actual("string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseAccess, path, "int", "string")
//	err := errors.OutOfBounds(errors.PhaseAccess, path, 10, 5)
//
// Class sentinels work with the standard library:
//
//	if errors.Is(err, errors.ErrResourceExhausted) { ... }
package errors
