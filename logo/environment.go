//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ContinuationLineFunc supplies the next raw line of source while
// parsing a multi-line "to ... end" definition. It is the injected
// I/O hook spec.md §9 calls for, so the evaluator never owns I/O
// itself.
type ContinuationLineFunc func() (string, error)

// frame is one entry of the environment's frame stack: a mapping from
// variable name (without leading ":") to value.
type frame map[string]Value

// Environment is a non-empty stack of frames (the bottom one being the
// global frame) plus the procedure table and turtle backend shared by
// every procedure invocation, per spec.md §3/§4.5.
type Environment struct {
	frames   []frame
	procs    map[string]*Procedure
	turtle   TurtleBackend
	nextLine ContinuationLineFunc
	Writer   OutputWriter
}

// NewEnvironment creates a fresh Environment with one global frame,
// the primitive procedure table installed, and the given collaborators.
func NewEnvironment(nextLine ContinuationLineFunc, turtle TurtleBackend, writer OutputWriter) *Environment {
	env := &Environment{
		frames:   []frame{make(frame)},
		procs:    make(map[string]*Procedure),
		turtle:   turtle,
		nextLine: nextLine,
		Writer:   writer,
	}
	registerPrimitives(env.procs)
	return env
}

// pushFrame adds a new frame holding the given bindings to the top of
// the stack, used when invoking a user-defined procedure.
func (e *Environment) pushFrame(bindings frame) {
	log.WithField("depth", len(e.frames)+1).Debug("logo: push frame")
	e.frames = append(e.frames, bindings)
}

// popFrame discards the top-most frame. It must be invoked only in
// balance with a preceding pushFrame.
func (e *Environment) popFrame() {
	if len(e.frames) <= 1 {
		panic("logo: pop of the global frame")
	}
	e.frames = e.frames[:len(e.frames)-1]
	log.WithField("depth", len(e.frames)).Debug("logo: pop frame")
}

// resetFrames restores the stack to depth 1, discarding all but the
// global frame. The evaluator calls this after an error unwinds the
// Go call stack without a matching popFrame for every pushFrame, so
// that frames never leak across top-level lines (spec.md §5).
func (e *Environment) resetFrames() {
	e.frames = e.frames[:1]
}

// FrameDepth reports the current number of frames (for tests asserting
// the frame-stack-balance invariant).
func (e *Environment) FrameDepth() int { return len(e.frames) }

// LookupVariable searches frames from innermost to global and returns
// the bound value, or an InterpreterError if the name is unbound.
func (e *Environment) LookupVariable(name string) (Value, error) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, nil
		}
	}
	return Value{}, newError(fmt.Sprintf("%s has no value", name))
}

// SetVariableValue binds name to val in the innermost frame if it is
// already bound there; otherwise the binding is created (or
// overwritten) in the global frame. This asymmetry is a deliberate
// Logo convention (spec.md §9), not a bug: lexical-chain assignment
// must not be substituted here.
func (e *Environment) SetVariableValue(name string, val Value) {
	top := len(e.frames) - 1
	if _, ok := e.frames[top][name]; ok {
		e.frames[top][name] = val
		return
	}
	e.frames[0][name] = val
}

// DefineProcedure registers proc under name, overwriting any earlier
// binding (the procedure table is append-only at runtime; user
// definitions shadow by overwrite per spec.md §3).
func (e *Environment) DefineProcedure(name string, proc *Procedure) {
	e.procs[name] = proc
}

// ResolveProcedure looks up a procedure by name (including aliases),
// returning ok=false if none is registered.
func (e *Environment) ResolveProcedure(name string) (*Procedure, bool) {
	p, ok := e.procs[name]
	return p, ok
}

// NextContinuationLine pulls the next raw source line while parsing a
// multi-line definition.
func (e *Environment) NextContinuationLine() (string, error) {
	return e.nextLine()
}

// Turtle exposes the turtle-graphics backend to the turtle primitives.
func (e *Environment) Turtle() TurtleBackend { return e.turtle }
