// Package errors defines error types for the lineprobe harness.
//
// This package provides structured error types that wrap different failure
// scenarios when driving a probe subprocess. All error types support error
// unwrapping and can be checked using errors.Is, errors.As, and errors.AsType.
// The two timeout errors additionally satisfy the Timeout() convention
// recognized by os.IsTimeout.
package errors
