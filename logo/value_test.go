//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueStringTopLevelHasNoBrackets(t *testing.T) {
	v := Sentence([]Value{Word("a"), Word("b"), Sentence([]Value{Word("c")})})
	assert.Equal(t, "a b [c]", v.String())
}

func TestValueStringWord(t *testing.T) {
	assert.Equal(t, "hello", Word("hello").String())
}

func TestValueGoStringAlwaysBrackets(t *testing.T) {
	v := Sentence([]Value{Word("a"), Word("b")})
	assert.Equal(t, "[a b]", v.GoString())
}

func TestValueEqual(t *testing.T) {
	a := Sentence([]Value{Word("x"), Word("y")})
	b := Sentence([]Value{Word("x"), Word("y")})
	c := Sentence([]Value{Word("x"), Word("z")})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Word("x")))
}

func TestTokenValueRoundTrip(t *testing.T) {
	tokens, err := ParseLine(`[a "b [c]]`)
	if err != nil {
		t.Fatal(err)
	}
	v := tokenToValue(tokens[0])
	back := valueToToken(v)
	assert.Equal(t, tokens[0].String(), back.String())
}
