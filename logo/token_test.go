//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Word()
	}
	return out
}

func TestParseLineWords(t *testing.T) {
	tokens, err := ParseLine("print sum 1 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"print", "sum", "1", "2"}, words(tokens))
}

func TestParseLineNegativeNumber(t *testing.T) {
	tokens, err := ParseLine("print -5")
	require.NoError(t, err)
	assert.Equal(t, []string{"print", "-5"}, words(tokens))
}

func TestParseLineMinusAsOperator(t *testing.T) {
	tokens, err := ParseLine("print 3-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"print", "3", "-", "1"}, words(tokens))
}

func TestParseLineOperatorsAreDelimiters(t *testing.T) {
	tokens, err := ParseLine("(sum 1 2)")
	require.NoError(t, err)
	assert.Equal(t, []string{"(", "sum", "1", "2", ")"}, words(tokens))
}

func TestParseLineSentence(t *testing.T) {
	tokens, err := ParseLine("print [a b [c] d]")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "print", tokens[0].Word())
	require.True(t, tokens[1].IsSentence())
	inner := tokens[1].Sentence()
	assert.Equal(t, []string{"a", "b", "", "d"}, words(inner))
	require.True(t, inner[2].IsSentence())
	assert.Equal(t, []string{"c"}, words(inner[2].Sentence()))
}

func TestParseLineUnmatchedBracket(t *testing.T) {
	_, err := ParseLine("print [a b")
	require.Error(t, err)
}

func TestParseLineUnexpectedBracket(t *testing.T) {
	_, err := ParseLine("print a]")
	require.Error(t, err)
}

func TestParseLineQuotedWord(t *testing.T) {
	tokens, err := ParseLine(`print "hello`)
	require.NoError(t, err)
	assert.Equal(t, []string{"print", `"hello`}, words(tokens))
}

func TestParseLineVariableReference(t *testing.T) {
	tokens, err := ParseLine("print :x")
	require.NoError(t, err)
	assert.Equal(t, []string{"print", ":x"}, words(tokens))
}
