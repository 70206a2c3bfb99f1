//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"fmt"
	"io"
)

// OutputWriter is where "print"/"show"/"type" send their output. It is
// typically os.Stdout in the REPL and a capturing buffer in the test
// harness (internal/testscript).
type OutputWriter = io.Writer

// registerFunc registers a primitive under every name in names.
type registerFunc func(names []string, arity int, needsEnv bool, fn PrimitiveFunc)

// registerPrimitives installs the full primitive surface of spec.md
// §4.6 into procs, keyed by every alias each procedure answers to. The
// registration order matches original_source/logo_primitives.py's
// load() (list ops, arithmetic, comparisons, booleans, io, repeat/word/
// sentence/list/fput, turtle graphics) followed by logo.py's own
// make_primitive calls (type, make, if, ifelse, output, stop, run).
//
// Registration order matters for one name: "lt" is claimed both by the
// comparison group ("lessp"/"lt"/"less?") and by the turtle group
// ("left"/"lt"); the original registers turtle graphics last, so "lt"
// ultimately resolves to "left". That collision is preserved here
// rather than "fixed", per spec.md §4.6 naming both groups identically.
func registerPrimitives(procs map[string]*Procedure) {
	reg := func(names []string, arity int, needsEnv bool, fn PrimitiveFunc) {
		proc := NewPrimitive(names[0], arity, needsEnv, fn, nil)
		for _, n := range names {
			procs[n] = proc
		}
	}
	one := func(name string, arity int, needsEnv bool, fn PrimitiveFunc) {
		reg([]string{name}, arity, needsEnv, fn)
	}

	// --- list ops ---
	one("first", 1, false, func(args []Value, _ *Environment) (Outcome, error) {
		v := args[0]
		if valueLen(v) == 0 {
			return Outcome{}, newError("list index out of range")
		}
		return ValueOutcome(valueFirst(v)), nil
	})
	reg([]string{"butfirst", "bf"}, 1, false, func(args []Value, _ *Environment) (Outcome, error) {
		return ValueOutcome(valueButFirst(args[0])), nil
	})
	one("last", 1, false, func(args []Value, _ *Environment) (Outcome, error) {
		v := args[0]
		if valueLen(v) == 0 {
			return Outcome{}, newError("list index out of range")
		}
		return ValueOutcome(valueLast(v)), nil
	})
	reg([]string{"butlast", "bl"}, 1, false, func(args []Value, _ *Environment) (Outcome, error) {
		return ValueOutcome(valueButLast(args[0])), nil
	})

	// --- arithmetic ---
	one("sum", 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		s, err := numericBinary(args[0].AsWord(), args[1].AsWord(),
			func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b })
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(Word(s)), nil
	})
	one("difference", 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		s, err := numericBinary(args[0].AsWord(), args[1].AsWord(),
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(Word(s)), nil
	})
	one("product", 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		s, err := numericBinary(args[0].AsWord(), args[1].AsWord(),
			func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(Word(s)), nil
	})
	reg([]string{"div", "quotient"}, 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		s, err := numericDivide(args[0].AsWord(), args[1].AsWord())
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(Word(s)), nil
	})

	// --- comparisons ---
	reg([]string{"equalp", "eq", "equal?"}, 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		return ValueOutcome(Word(boolWord(valuesEqual(args[0], args[1])))), nil
	})
	reg([]string{"lessp", "lt", "less?"}, 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		b, err := numericCompare(args[0].AsWord(), args[1].AsWord(), func(a, c float64) bool { return a < c })
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(Word(boolWord(b))), nil
	})
	reg([]string{"greaterp", "gp", "greater?"}, 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		b, err := numericCompare(args[0].AsWord(), args[1].AsWord(), func(a, c float64) bool { return a > c })
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(Word(boolWord(b))), nil
	})
	reg([]string{"emptyp", "empty?"}, 1, false, func(args []Value, _ *Environment) (Outcome, error) {
		return ValueOutcome(Word(boolWord(valueLen(args[0]) == 0))), nil
	})
	reg([]string{"listp", "list?"}, 1, false, func(args []Value, _ *Environment) (Outcome, error) {
		return ValueOutcome(Word(boolWord(args[0].IsSentence()))), nil
	})
	reg([]string{"wordp", "word?"}, 1, false, func(args []Value, _ *Environment) (Outcome, error) {
		return ValueOutcome(Word(boolWord(!args[0].IsSentence()))), nil
	})

	// --- boolean ---
	one("or", 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		x, err := toBool(args[0].AsWord())
		if err != nil {
			return Outcome{}, err
		}
		y, err := toBool(args[1].AsWord())
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(Word(boolWord(x || y))), nil
	})
	one("and", 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		x, err := toBool(args[0].AsWord())
		if err != nil {
			return Outcome{}, err
		}
		y, err := toBool(args[1].AsWord())
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(Word(boolWord(x && y))), nil
	})
	one("not", 1, false, func(args []Value, _ *Environment) (Outcome, error) {
		x, err := toBool(args[0].AsWord())
		if err != nil {
			return Outcome{}, err
		}
		return ValueOutcome(Word(boolWord(!x))), nil
	})

	// --- io ---
	one("print", 1, false, func(args []Value, env *Environment) (Outcome, error) {
		fmt.Fprintln(env.Writer, args[0].String())
		return NoneOutcome(), nil
	})
	one("show", 1, false, func(args []Value, env *Environment) (Outcome, error) {
		v := args[0]
		if v.IsSentence() {
			fmt.Fprintln(env.Writer, "["+v.String()+"]")
		} else {
			fmt.Fprintln(env.Writer, v.String())
		}
		return NoneOutcome(), nil
	})
	// --- repeat / word / sentence / list / fput ---
	one("repeat", 2, true, func(args []Value, env *Environment) (Outcome, error) {
		n, err := toNum(args[0].AsWord())
		if err != nil {
			return Outcome{}, err
		}
		elems := valueLineElements(args[1])
		for i := int64(0); i < int64(n.asFloat()); i++ {
			buf := NewBuffer(append([]Token(nil), elems...))
			if _, err := EvalLine(buf, env); err != nil {
				return Outcome{}, err
			}
		}
		return NoneOutcome(), nil
	})
	one("word", 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		if args[0].IsSentence() || args[1].IsSentence() {
			return Outcome{}, newError("Cannot take a sentence input.")
		}
		return ValueOutcome(Word(args[0].AsWord() + args[1].AsWord())), nil
	})
	reg([]string{"sentence", "se"}, 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		x := toElements(args[0])
		y := toElements(args[1])
		return ValueOutcome(Sentence(append(append([]Value{}, x...), y...))), nil
	})
	one("list", 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		return ValueOutcome(Sentence([]Value{args[0], args[1]})), nil
	})
	one("fput", 2, false, func(args []Value, _ *Environment) (Outcome, error) {
		if !args[1].IsSentence() {
			return Outcome{}, newError("Second input must be a sentence.")
		}
		elems := append([]Value{args[0]}, args[1].Elements()...)
		return ValueOutcome(Sentence(elems)), nil
	})

	registerTurtlePrimitives(reg)

	// --- control / assignment (logo.py's own make_primitive calls) ---
	one("type", 1, false, func(args []Value, env *Environment) (Outcome, error) {
		fmt.Fprint(env.Writer, args[0].String())
		return NoneOutcome(), nil
	})
	one("make", 2, true, func(args []Value, env *Environment) (Outcome, error) {
		env.SetVariableValue(args[0].AsWord(), args[1])
		return NoneOutcome(), nil
	})
	one("if", 2, true, func(args []Value, env *Environment) (Outcome, error) {
		return logoIf(args[0], args[1], env)
	})
	one("ifelse", 3, true, func(args []Value, env *Environment) (Outcome, error) {
		return logoIfElse(args[0], args[1], args[2], env)
	})
	one("output", 1, false, func(args []Value, _ *Environment) (Outcome, error) {
		return OutputOutcome(args[0]), nil
	})
	one("stop", 0, false, func(_ []Value, _ *Environment) (Outcome, error) {
		return OutputOutcome(Word("")), nil
	})
	one("run", 1, true, func(args []Value, env *Environment) (Outcome, error) {
		elems := valueLineElements(args[0])
		buf := NewBuffer(elems)
		return EvalLine(buf, env)
	})
}

// boolWord renders a Go bool the way Logo represents booleans.
func boolWord(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// valuesEqual implements "equalp": string equality first, falling back
// to floating point equality if both sides parse as numbers (spec.md
// §4.6).
func valuesEqual(x, y Value) bool {
	if x.Equal(y) {
		return true
	}
	if x.IsSentence() || y.IsSentence() {
		return false
	}
	nx, err := toNum(x.AsWord())
	if err != nil {
		return false
	}
	ny, err := toNum(y.AsWord())
	if err != nil {
		return false
	}
	return nx.asFloat() == ny.asFloat()
}

// valueLen, valueFirst, valueLast, valueButFirst, valueButLast, and
// toElements give list/word operations generic behavior over both
// value shapes, mirroring how original_source/logo_primitives.py's
// first/last/butfirst/butlast/sentence operate uniformly on Python
// strings and lists via slicing.

func valueLen(v Value) int {
	if v.IsSentence() {
		return len(v.Elements())
	}
	return len([]rune(v.AsWord()))
}

func valueFirst(v Value) Value {
	if v.IsSentence() {
		return v.Elements()[0]
	}
	r := []rune(v.AsWord())
	return Word(string(r[0]))
}

func valueLast(v Value) Value {
	if v.IsSentence() {
		e := v.Elements()
		return e[len(e)-1]
	}
	r := []rune(v.AsWord())
	return Word(string(r[len(r)-1]))
}

func valueButFirst(v Value) Value {
	if v.IsSentence() {
		e := v.Elements()
		if len(e) == 0 {
			return Sentence(nil)
		}
		return Sentence(append([]Value{}, e[1:]...))
	}
	r := []rune(v.AsWord())
	if len(r) == 0 {
		return Word("")
	}
	return Word(string(r[1:]))
}

func valueButLast(v Value) Value {
	if v.IsSentence() {
		e := v.Elements()
		if len(e) == 0 {
			return Sentence(nil)
		}
		return Sentence(append([]Value{}, e[:len(e)-1]...))
	}
	r := []rune(v.AsWord())
	if len(r) == 0 {
		return Word("")
	}
	return Word(string(r[:len(r)-1]))
}

// toElements returns v's elements if it is a sentence, or a single
// element slice wrapping v otherwise (Python's "if type(x) != list:
// x = [x]").
func toElements(v Value) []Value {
	if v.IsSentence() {
		return v.Elements()
	}
	return []Value{v}
}

// valueLineElements converts a Value into the token slice EvalLine
// expects, used by "repeat"/"run"/"if"/"ifelse" to re-evaluate a
// quoted sentence (or single word) as a line of source.
func valueLineElements(v Value) []Token {
	tok := valueToToken(v)
	if tok.IsSentence() {
		return tok.Sentence()
	}
	return []Token{tok}
}

// logoIf implements the "if" primitive: evaluate the condition, run
// the body on True, do nothing on False, error otherwise. The exact
// error wording is preserved from original_source/logo.py per spec.md
// §9's open-question note.
func logoIf(cond, body Value, env *Environment) (Outcome, error) {
	condBuf := NewBuffer(valueLineElements(cond))
	result, err := EvalLine(condBuf, env)
	if err != nil {
		return Outcome{}, err
	}
	switch result.Value().AsWord() {
	case "True":
		bodyBuf := NewBuffer(valueLineElements(body))
		return EvalLine(bodyBuf, env)
	case "False":
		return NoneOutcome(), nil
	default:
		return Outcome{}, newError(fmt.Sprintf("First argument to 'if' is not True or False: %s", result.Value().GoString()))
	}
}

// logoIfElse implements the "ifelse" primitive, same as logoIf but
// with an explicit else branch.
func logoIfElse(cond, trueBody, falseBody Value, env *Environment) (Outcome, error) {
	condBuf := NewBuffer(valueLineElements(cond))
	result, err := EvalLine(condBuf, env)
	if err != nil {
		return Outcome{}, err
	}
	switch result.Value().AsWord() {
	case "True":
		buf := NewBuffer(valueLineElements(trueBody))
		return EvalLine(buf, env)
	case "False":
		buf := NewBuffer(valueLineElements(falseBody))
		return EvalLine(buf, env)
	default:
		return Outcome{}, newError(fmt.Sprintf("First argument to 'ifelse' is not True or False: %s", result.Value().GoString()))
	}
}
