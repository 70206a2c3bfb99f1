//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import "strconv"

// PrimitiveFunc is the signature of a host-language procedure body. It
// receives the already-evaluated arguments and the environment (passed
// as a separate parameter whether or not NeedsEnv is set) and returns
// an Outcome carrying the result, or an error.
type PrimitiveFunc func(args []Value, env *Environment) (Outcome, error)

// Procedure is a record describing either a primitive or a
// user-defined procedure, per spec.md §3.
type Procedure struct {
	Name         string
	Arity        int
	IsPrimitive  bool
	NeedsEnv     bool
	FormalParams []string

	// primitive body; nil for user-defined procedures.
	primitive PrimitiveFunc

	// user-defined body: one token slice (a tokenized line) per line
	// of the definition, in textual order.
	body [][]Token
}

// NewPrimitive constructs a primitive Procedure. When formalParams is
// nil, parameters default to positional names "0", "1", … as spec.md §3
// specifies.
func NewPrimitive(name string, arity int, needsEnv bool, fn PrimitiveFunc, formalParams []string) *Procedure {
	if formalParams == nil {
		formalParams = make([]string, arity)
		for i := range formalParams {
			formalParams[i] = strconv.Itoa(i)
		}
	}
	return &Procedure{
		Name:         name,
		Arity:        arity,
		IsPrimitive:  true,
		NeedsEnv:     needsEnv,
		FormalParams: formalParams,
		primitive:    fn,
	}
}

// NewUserProcedure constructs a user-defined Procedure from a parsed
// "to ... end" definition. Arity equals the number of formal parameters
// and NeedsEnv is always set, matching eval_definition's
// `Procedure(name, len(formal_params), body, False, True,
// formal_params)`. Only the formal parameters are bound when it runs.
func NewUserProcedure(name string, formalParams []string, body [][]Token) *Procedure {
	return &Procedure{
		Name:         name,
		Arity:        len(formalParams),
		IsPrimitive:  false,
		NeedsEnv:     true,
		FormalParams: formalParams,
		body:         body,
	}
}
