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

func newEnvForFrameTests(t *testing.T) *Environment {
	t.Helper()
	return NewEnvironment(func() (string, error) { return "", nil }, NewLogTurtle(), &bytes.Buffer{})
}

func TestSetVariableValueWritesGlobalWhenUnbound(t *testing.T) {
	env := newEnvForFrameTests(t)
	env.pushFrame(make(frame))
	env.SetVariableValue("x", Word("1"))
	// "x" was not already bound in the inner frame, so it lands in the
	// global frame and is visible after the frame is popped.
	env.popFrame()
	v, err := env.LookupVariable("x")
	require.NoError(t, err)
	assert.Equal(t, "1", v.AsWord())
}

func TestSetVariableValueOverwritesInnermostWhenAlreadyBoundThere(t *testing.T) {
	env := newEnvForFrameTests(t)
	env.pushFrame(frame{"x": Word("local")})
	env.SetVariableValue("x", Word("updated"))
	v, err := env.LookupVariable("x")
	require.NoError(t, err)
	assert.Equal(t, "updated", v.AsWord())
	env.popFrame()
	_, err = env.LookupVariable("x")
	assert.Error(t, err, "the inner binding must not have leaked to the global frame")
}

func TestLookupVariableSearchesInnermostFirst(t *testing.T) {
	env := newEnvForFrameTests(t)
	env.SetVariableValue("x", Word("global"))
	env.pushFrame(frame{"x": Word("local")})
	v, err := env.LookupVariable("x")
	require.NoError(t, err)
	assert.Equal(t, "local", v.AsWord())
}

func TestResetFramesRestoresDepthOne(t *testing.T) {
	env := newEnvForFrameTests(t)
	env.pushFrame(make(frame))
	env.pushFrame(make(frame))
	assert.Equal(t, 3, env.FrameDepth())
	env.resetFrames()
	assert.Equal(t, 1, env.FrameDepth())
}

func TestPopFramePanicsAtGlobalDepth(t *testing.T) {
	env := newEnvForFrameTests(t)
	assert.Panics(t, func() { env.popFrame() })
}
