//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurtlePrimitivesRecordCalls(t *testing.T) {
	rt := NewRecordingTurtle()
	env := NewEnvironment(func() (string, error) { return "", nil }, rt, &bytes.Buffer{})

	require.NoError(t, InterpretLine("forward 10", env))
	require.NoError(t, InterpretLine("right 90", env))
	require.NoError(t, InterpretLine("penup", env))

	require.Len(t, rt.Path, 3)
	assert.Equal(t, "forward", rt.Path[0].Name)
	assert.Equal(t, []float64{10}, rt.Path[0].Args)
	assert.Equal(t, "right", rt.Path[1].Name)
	assert.Equal(t, "penup", rt.Path[2].Name)
}

func TestTurtleStateTracksPosition(t *testing.T) {
	rt := NewRecordingTurtle()
	env := NewEnvironment(func() (string, error) { return "", nil }, rt, &bytes.Buffer{})
	require.NoError(t, InterpretLine("setpos 3 4", env))
	assert.Equal(t, 3.0, rt.x)
	assert.Equal(t, 4.0, rt.y)
}

func TestLeftAliasIsTheTurtlePrimitiveNotLessp(t *testing.T) {
	env := NewEnvironment(func() (string, error) { return "", nil }, NewRecordingTurtle(), &bytes.Buffer{})
	proc, ok := env.ResolveProcedure("lt")
	require.True(t, ok)
	assert.Equal(t, 1, proc.Arity, "left takes one input where lessp takes two")
	assert.False(t, proc.NeedsEnv, "turtle primitives register with needsEnv=false, matching the source's load_turtle_graphics")
}
