//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"fmt"
	"strconv"
	"strings"
)

// outcomeKind distinguishes the three shapes an evaluated line or
// procedure body can produce, per spec.md §9's redesign note: rather
// than sentinel-tagging a magic 2-tuple, the outcome of evaluation is a
// proper sum type distinct from error propagation.
type outcomeKind int

const (
	outcomeNone outcomeKind = iota
	outcomeValue
	outcomeOutput
)

// Outcome is the result of evaluating an expression, a line, or a
// procedure body: no result, a plain value, or a value returned via
// "output"/"stop" that should unwind to the enclosing procedure call.
type Outcome struct {
	kind  outcomeKind
	value Value
}

// NoneOutcome represents the absence of a result.
func NoneOutcome() Outcome { return Outcome{kind: outcomeNone} }

// ValueOutcome wraps a plain result value.
func ValueOutcome(v Value) Outcome { return Outcome{kind: outcomeValue, value: v} }

// OutputOutcome wraps a value returned via the "output"/"stop"
// primitives, which terminates the enclosing user-procedure body.
func OutputOutcome(v Value) Outcome { return Outcome{kind: outcomeOutput, value: v} }

// IsNone reports whether the outcome carries no value.
func (o Outcome) IsNone() bool { return o.kind == outcomeNone }

// IsOutput reports whether the outcome is an "output"/"stop" result.
func (o Outcome) IsOutput() bool { return o.kind == outcomeOutput }

// Value returns the outcome's payload. It is the zero Value when
// IsNone() is true.
func (o Outcome) Value() Value { return o.value }

// infixSymbols maps an infix operator character to the Logo primitive
// procedure name that implements it (spec.md §4.3).
var infixSymbols = map[string]string{
	"<": "lessp",
	">": "greaterp",
	"=": "equalp",
	"+": "sum",
	"-": "difference",
	"*": "product",
	"/": "div",
}

// infixGroup0, infixGroup1 and infixGroup2 are the three precedence
// groups, lowest first: relational, additive, multiplicative.
var (
	infixGroup0 = map[string]bool{"<": true, ">": true, "=": true}
	infixGroup1 = map[string]bool{"+": true, "-": true}
	infixGroup2 = map[string]bool{"*": true, "/": true}
)

// EvalLine repeatedly evaluates one expression from buf until either
// the buffer is exhausted or an expression yields a non-none result,
// returning that outcome (or NoneOutcome if the buffer ran dry).
func EvalLine(buf *Buffer[Token], env *Environment) (Outcome, error) {
	result := NoneOutcome()
	for !buf.Exhausted() && result.IsNone() {
		var err error
		result, err = logoEval(buf, env, false)
		if err != nil {
			return Outcome{}, err
		}
	}
	return result, nil
}

// logoEval evaluates a single expression at buf's cursor with
// precedence-aware infix handling. preOperator is true when the caller
// is already inside a higher-precedence context and must not let this
// call absorb a lower-precedence operator (spec.md §4.3).
func logoEval(buf *Buffer[Token], env *Environment, preOperator bool) (Outcome, error) {
	if buf.Exhausted() {
		return Outcome{}, newError(fmt.Sprintf("Ran out of input at %s", buf.String()))
	}
	if cur, _ := buf.Current(); !cur.IsSentence() && cur.Word() == ")" {
		return Outcome{}, newError(fmt.Sprintf(`Unexpected ")" at %s`, buf.String()))
	}

	result, err := evalNonInfix(buf, env)
	if err != nil {
		return Outcome{}, err
	}

	for {
		cur, ok := buf.Current()
		if !ok || cur.IsSentence() {
			break
		}
		op := cur.Word()
		procName, isInfix := infixSymbols[op]
		if !isInfix {
			break
		}
		proc, _ := env.ResolveProcedure(procName)

		if infixGroup2[op] {
			buf.Pop()
			if buf.Exhausted() {
				return Outcome{}, newError(fmt.Sprintf("Ran out of input at %s", buf.String()))
			}
			right, err := evalNonInfix(buf, env)
			if err != nil {
				return Outcome{}, err
			}
			result, err = invokeProcedure(proc, []Value{result.Value(), right.Value()}, env)
			if err != nil {
				return Outcome{}, err
			}
			continue
		}

		if preOperator {
			return result, nil
		}
		buf.Pop()
		var right Outcome
		if infixGroup0[op] {
			right, err = logoEval(buf, env, false)
		} else {
			right, err = logoEval(buf, env, true)
		}
		if err != nil {
			return Outcome{}, err
		}
		result, err = invokeProcedure(proc, []Value{result.Value(), right.Value()}, env)
		if err != nil {
			return Outcome{}, err
		}
	}

	return result, nil
}

// evalNonInfix pops and evaluates one token, without regard to any
// following infix operator (spec.md §4.3's dispatch table).
func evalNonInfix(buf *Buffer[Token], env *Environment) (Outcome, error) {
	tok := buf.Pop()

	switch {
	case !tok.IsSentence() && isSelfEvaluating(tok.Word()):
		return ValueOutcome(Word(tok.Word())), nil

	case !tok.IsSentence() && isVariableToken(tok.Word()):
		name := tok.Word()[1:]
		if len(name) == 0 {
			return Outcome{}, newError(fmt.Sprintf("Illegal variable expression %s", tok.Word()))
		}
		v, err := env.LookupVariable(name)
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(v), nil

	case !tok.IsSentence() && tok.Word() == "to":
		return evalDefinition(buf, env)

	case isQuotedToken(tok):
		return ValueOutcome(textOfQuotation(tok)), nil

	case !tok.IsSentence() && tok.Word() == "(":
		result, err := logoEval(buf, env, false)
		if err != nil {
			return Outcome{}, err
		}
		cur, ok := buf.Current()
		if !ok || cur.IsSentence() || cur.Word() != ")" {
			return Outcome{}, newError(fmt.Sprintf(`Expected ")" at %s`, buf.String()))
		}
		buf.Pop()
		return result, nil

	default:
		name := tok.Word()
		proc, ok := env.ResolveProcedure(name)
		if !ok {
			return Outcome{}, newError(fmt.Sprintf("I do not know how to %s.", name))
		}
		return applyProcedure(proc, buf, env)
	}
}

// isSelfEvaluating reports whether w is a numeric literal or a boolean
// literal ("True"/"False"), the self-evaluating tokens of spec.md §4.3.
func isSelfEvaluating(w string) bool {
	if w == "True" || w == "False" {
		return true
	}
	_, err := strconv.ParseFloat(w, 64)
	return err == nil
}

// isVariableToken reports whether w denotes a variable reference
// (":name").
func isVariableToken(w string) bool {
	return strings.HasPrefix(w, ":")
}

// isQuotedToken reports whether tok is a quotation: a sentence (always
// implicitly quoted) or a `"`-prefixed word.
func isQuotedToken(tok Token) bool {
	if tok.IsSentence() {
		return true
	}
	return strings.HasPrefix(tok.Word(), `"`)
}

// textOfQuotation strips the leading marker character from a quoted
// word (the `"` of a literal, or the `:` of a formal-parameter token
// during definition parsing); a sentence token passes through
// unchanged, converted to its Value form.
func textOfQuotation(tok Token) Value {
	if tok.IsSentence() {
		return tokenToValue(tok)
	}
	w := tok.Word()
	if len(w) == 0 {
		return Word(w)
	}
	return Word(w[1:])
}

// applyProcedure collects proc.Arity arguments by recursively
// evaluating expressions from buf, then invokes proc.
func applyProcedure(proc *Procedure, buf *Buffer[Token], env *Environment) (Outcome, error) {
	args, err := collectArgs(proc.Arity, buf, env)
	if err != nil {
		return Outcome{}, err
	}
	return invokeProcedure(proc, args, env)
}

// collectArgs evaluates n arguments from buf via recursive calls to
// logoEval, failing if the buffer runs out first.
func collectArgs(n int, buf *Buffer[Token], env *Environment) ([]Value, error) {
	args := make([]Value, 0, n)
	for !buf.Exhausted() && len(args) < n {
		outcome, err := logoEval(buf, env, false)
		if err != nil {
			return nil, err
		}
		args = append(args, outcome.Value())
	}
	if len(args) < n {
		return nil, newError(fmt.Sprintf("Found only %d of %d args at %s", len(args), n, buf.String()))
	}
	return args, nil
}

// invokeProcedure applies proc to already-evaluated args: a primitive
// body is called directly (any error it raises is wrapped into an
// InterpreterError); a user-defined body pushes a new frame binding
// each formal parameter positionally, runs its lines in order, and
// pops the frame on every exit path.
func invokeProcedure(proc *Procedure, args []Value, env *Environment) (Outcome, error) {
	if proc.IsPrimitive {
		outcome, err := proc.primitive(args, env)
		if err != nil {
			return Outcome{}, wrapError(err)
		}
		return outcome, nil
	}

	bindings := make(frame, len(proc.FormalParams))
	for i, name := range proc.FormalParams {
		bindings[name] = args[i]
	}
	env.pushFrame(bindings)
	for _, lineTokens := range proc.body {
		lineBuf := NewBuffer(lineTokens)
		outcome, err := EvalLine(lineBuf, env)
		if err != nil {
			env.popFrame()
			return Outcome{}, err
		}
		if outcome.IsOutput() {
			env.popFrame()
			return ValueOutcome(outcome.Value()), nil
		}
		if !outcome.IsNone() {
			env.popFrame()
			return Outcome{}, newError(fmt.Sprintf("You do not say what to do with %s", outcome.Value().GoString()))
		}
	}
	env.popFrame()
	return NoneOutcome(), nil
}

// evalDefinition parses a "to ... end" definition. buf is positioned
// just after the "to" keyword was consumed by the caller. The
// procedure name and formal parameters are read from the remainder of
// the current line; the body is read line by line from the
// environment's continuation-line supplier until a line consisting of
// the single token "end" is reached (spec.md §4.4).
func evalDefinition(buf *Buffer[Token], env *Environment) (Outcome, error) {
	if buf.Exhausted() {
		return Outcome{}, newError(fmt.Sprintf("Ran out of input at %s", buf.String()))
	}
	name := buf.Pop().Word()

	var formalParams []string
	for !buf.Exhausted() {
		argTok := buf.Pop()
		formalParams = append(formalParams, textOfQuotation(argTok).AsWord())
	}

	var body [][]Token
	for {
		line, err := env.NextContinuationLine()
		if err != nil {
			return Outcome{}, err
		}
		lineTokens, err := ParseLine(line)
		if err != nil {
			return Outcome{}, err
		}
		if len(lineTokens) == 1 && !lineTokens[0].IsSentence() && lineTokens[0].Word() == "end" {
			break
		}
		body = append(body, lineTokens)
	}

	env.DefineProcedure(name, NewUserProcedure(name, formalParams, body))
	return NoneOutcome(), nil
}

// InterpretLine tokenizes and evaluates a single top-level line,
// restoring the frame stack to depth 1 on any error so that frames
// never leak across lines (spec.md §5).
func InterpretLine(line string, env *Environment) error {
	tokens, err := ParseLine(line)
	if err != nil {
		return err
	}
	buf := NewBuffer(tokens)
	outcome, err := EvalLine(buf, env)
	if err != nil {
		env.resetFrames()
		return err
	}
	if !outcome.IsNone() {
		env.resetFrames()
		return newError(fmt.Sprintf("You do not say what to do with %s.", outcome.Value().GoString()))
	}
	return nil
}
