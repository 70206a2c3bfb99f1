//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import "strings"

// Value is a runtime value: either a word (a string; numbers and the
// booleans "True"/"False" are words at this level) or a sentence (an
// ordered sequence of values). Quotation of a sentence yields it
// unchanged; quotation of a `"`-prefixed word yields the word with the
// leading `"` stripped.
type Value struct {
	word     string
	sentence []Value
	isSent   bool
}

// Word constructs a word value.
func Word(s string) Value { return Value{word: s} }

// Sentence constructs a sentence value from its elements.
func Sentence(elems []Value) Value { return Value{sentence: elems, isSent: true} }

// IsSentence reports whether v is a sentence rather than a word.
func (v Value) IsSentence() bool { return v.isSent }

// AsWord returns v's word text; only meaningful when !v.IsSentence().
func (v Value) AsWord() string { return v.word }

// Elements returns v's sentence elements; only meaningful when
// v.IsSentence().
func (v Value) Elements() []Value { return v.sentence }

// Equal compares two values the way the interpreter's "word" equality
// check does prior to any numeric fallback: string identity for words,
// structural equality for sentences.
func (v Value) Equal(o Value) bool {
	if v.isSent != o.isSent {
		return false
	}
	if !v.isSent {
		return v.word == o.word
	}
	if len(v.sentence) != len(o.sentence) {
		return false
	}
	for i := range v.sentence {
		if !v.sentence[i].Equal(o.sentence[i]) {
			return false
		}
	}
	return true
}

// String renders v the way "print" renders a top-level value: words
// verbatim, sentences space-separated with brackets only where nested,
// matching logo_type's contract (spec.md §4.6).
func (v Value) String() string {
	var sb strings.Builder
	writeValue(&sb, v, true)
	return sb.String()
}

// GoString renders v for diagnostic messages (the "You do not say what
// to do with" and if/ifelse condition errors), always bracketing
// sentences regardless of nesting depth.
func (v Value) GoString() string {
	if !v.isSent {
		return v.word
	}
	parts := make([]string, len(v.sentence))
	for i, e := range v.sentence {
		parts[i] = e.GoString()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// writeValue implements the printing algorithm from spec.md §4.6: a
// word is emitted as-is; a sentence's elements are space-separated,
// bracketed only when not at the top level.
func writeValue(sb *strings.Builder, v Value, topLevel bool) {
	if !v.isSent {
		sb.WriteString(v.word)
		return
	}
	if !topLevel {
		sb.WriteString("[")
	}
	for i, e := range v.sentence {
		if i > 0 {
			sb.WriteString(" ")
		}
		writeValue(sb, e, false)
	}
	if !topLevel {
		sb.WriteString("]")
	}
}

// tokenToValue converts a parsed Token into the Value it denotes as a
// quoted literal: a sentence token yields a sentence value (recursively
// converted); a word token yields a word value verbatim (quote-prefix
// stripping, where applicable, happens in the evaluator).
func tokenToValue(t Token) Value {
	if !t.IsSentence() {
		return Word(t.Word())
	}
	elems := make([]Value, len(t.Sentence()))
	for i, e := range t.Sentence() {
		elems[i] = tokenToValue(e)
	}
	return Sentence(elems)
}

// valueToToken converts a Value back into a Token tree, used when a
// primitive like "run" or "repeat" needs to re-evaluate a sentence
// value as a line of source.
func valueToToken(v Value) Token {
	if !v.IsSentence() {
		return WordToken(v.AsWord())
	}
	elems := make([]Token, len(v.Elements()))
	for i, e := range v.Elements() {
		elems[i] = valueToToken(e)
	}
	return SentenceToken(elems)
}
