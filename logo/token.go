//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"strings"

	"github.com/pkg/errors"
)

// Token is one atom of tokenized Logo source: either a word (a
// non-empty run of non-delimiter characters, possibly prefixed by `"`
// or `:`) or a nested sentence produced by a bracketed `[...]` group.
// Sentences nest to arbitrary depth.
type Token struct {
	word     string
	sentence []Token
}

// WordToken constructs a word token.
func WordToken(w string) Token { return Token{word: w} }

// SentenceToken constructs a nested-sentence token.
func SentenceToken(elems []Token) Token { return Token{sentence: elems, word: ""} }

// IsSentence reports whether this token is a nested sentence rather
// than a word.
func (t Token) IsSentence() bool { return t.sentence != nil }

// Word returns the token's word text; valid only when !IsSentence().
func (t Token) Word() string { return t.word }

// Sentence returns the token's nested tokens; valid only when
// IsSentence().
func (t Token) Sentence() []Token { return t.sentence }

// String renders the token for the Buffer's cursor representation:
// words verbatim, sentences bracketed with their elements separated by
// ", ".
func (t Token) String() string {
	if !t.IsSentence() {
		return t.word
	}
	parts := make([]string, len(t.sentence))
	for i, e := range t.sentence {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// logoOperators are the single-character operator tokens that double as
// infix symbols and as delimiters terminating a bare symbol.
const logoOperators = "+-*/=<>()"

// logoDelimiters additionally includes bracket and whitespace characters.
const logoDelimiters = "[]\n " + logoOperators

// SyntaxError reports a tokenizer-level failure: an unmatched or
// unexpected bracket. It carries the rune-cursor rendering so the user
// can localize the failure, matching the Python original's
// `SyntaxError('Unmatched "[" at ' + str(chars))`.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

// ParseLine converts a single line of Logo source into an ordered
// sequence of tokens (words and nested sentences). It is grounded on
// original_source/logo_parser.py's parse_line/parse_token/parse_symbol,
// transcribed rune-for-rune.
func ParseLine(line string) ([]Token, error) {
	chars := newRuneBuffer(strings.TrimSpace(line))
	return parseTokens(chars, 0)
}

// runeBuffer is a Buffer[runeElem] used for character-level scanning.
type runeElem rune

func (r runeElem) String() string { return string(rune(r)) }

func newRuneBuffer(s string) *Buffer[runeElem] {
	runes := []rune(s)
	elems := make([]runeElem, len(runes))
	for i, r := range runes {
		elems[i] = runeElem(r)
	}
	return NewBuffer(elems)
}

func parseTokens(chars *Buffer[runeElem], depth int) ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		cur, ok := chars.Current()
		if !ok {
			if depth != 0 {
				return nil, errors.WithStack(&SyntaxError{Message: `Unmatched "[" at ` + chars.String()})
			}
			return tokens, nil
		}
		switch rune(cur) {
		case ' ':
			chars.Pop()
		case '[':
			chars.Pop()
			nested, err := parseTokens(chars, depth+1)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, SentenceToken(nested))
		case ']':
			if depth == 0 {
				return nil, errors.WithStack(&SyntaxError{Message: `Unexpected "]" at ` + chars.String()})
			}
			chars.Pop()
			return tokens, nil
		default:
			tokens = append(tokens, WordToken(parseToken(chars)))
		}
	}
}

// parseToken parses the next token from chars, starting at chars.Current().
func parseToken(chars *Buffer[runeElem]) string {
	cur, _ := chars.Current()
	if strings.ContainsRune(logoOperators, rune(cur)) {
		prev, hasPrev := chars.Previous()
		// Negative numbers: '-' starts a symbol when the previous
		// character is a space or doesn't exist.
		if rune(cur) != '-' || (hasPrev && rune(prev) != ' ') {
			chars.Pop()
			return string(rune(cur))
		}
	}
	return parseSymbol(chars)
}

// parseSymbol accumulates characters until the next delimiter.
func parseSymbol(chars *Buffer[runeElem]) string {
	var sb strings.Builder
	sb.WriteRune(rune(chars.Pop()))
	for {
		cur, ok := chars.Current()
		if !ok || strings.ContainsRune(logoDelimiters, rune(cur)) {
			break
		}
		sb.WriteRune(rune(chars.Pop()))
	}
	return sb.String()
}
