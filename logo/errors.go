//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import "github.com/pkg/errors"

// InterpreterError is the single failure kind produced by the
// evaluator and by primitives (spec.md §7). All evaluator-level errors
// are of this kind; a primitive's native Go error is converted into one
// via wrapError.
type InterpreterError struct {
	Message string
	cause   error
}

func (e *InterpreterError) Error() string { return e.Message }

// Unwrap exposes the underlying cause, if any, for errors.Is/As and for
// --trace diagnostics via pkg/errors' stack-aware formatting.
func (e *InterpreterError) Unwrap() error { return e.cause }

// newError constructs an InterpreterError with the given message.
func newError(message string) *InterpreterError {
	return &InterpreterError{Message: message}
}

// wrapError converts an arbitrary Go error raised by a primitive into an
// InterpreterError, preserving the original cause and a stack trace
// (spec.md §7: "Uncaught failures from primitives are wrapped as
// interpreter errors").
func wrapError(err error) *InterpreterError {
	if ie, ok := err.(*InterpreterError); ok {
		return ie
	}
	return &InterpreterError{Message: err.Error(), cause: errors.WithStack(err)}
}
