//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnv(t *testing.T, out io.Writer) *Environment {
	t.Helper()
	failNoContinuation := func() (string, error) {
		t.Fatal("unexpected continuation-line request")
		return "", nil
	}
	return NewEnvironment(failNoContinuation, NewLogTurtle(), out)
}

func evalString(t *testing.T, env *Environment, line string) (Outcome, error) {
	t.Helper()
	tokens, err := ParseLine(line)
	require.NoError(t, err)
	buf := NewBuffer(tokens)
	return EvalLine(buf, env)
}

func TestEvalLineArithmeticGrouping(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	outcome, err := evalString(t, env, "sum 1 (sum 2 3)")
	require.NoError(t, err)
	assert.Equal(t, "6", outcome.Value().AsWord())
}

func TestEvalLineUnbalancedParensErrors(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	_, err := evalString(t, env, "sum 1 (sum 2 3 4)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Expected ")"`)
}

func TestEvalLineFullPrecedenceExpression(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	outcome, err := evalString(t, env, "3 + 12 / 8 - 0.25 * 2 = 2 * ( 1 + 0.5 ) * 4 / 3")
	require.NoError(t, err)
	assert.Equal(t, "True", outcome.Value().AsWord())
}

func TestEvalLineUnknownProcedure(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	_, err := evalString(t, env, "frobnicate 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "I do not know how to frobnicate.")
}

func TestMakeAndVariableLookup(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	require.NoError(t, InterpretLine(`make "x 5`, env))
	outcome, err := evalString(t, env, "sum :x 1")
	require.NoError(t, err)
	assert.Equal(t, "6", outcome.Value().AsWord())
}

func TestUnboundVariableErrors(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	_, err := evalString(t, env, "print :nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope has no value")
}

func TestFrameDepthRestoredAfterError(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	require.Equal(t, 1, env.FrameDepth())
	err := InterpretLine("print :nope", env)
	require.Error(t, err)
	assert.Equal(t, 1, env.FrameDepth())
}

func TestUserProcedureDefinitionAndOutput(t *testing.T) {
	var lines []string
	i := 0
	nextLine := func() (string, error) {
		if i >= len(lines) {
			t.Fatal("ran out of continuation lines")
		}
		line := lines[i]
		i++
		return line, nil
	}
	out := &bytes.Buffer{}
	env := NewEnvironment(nextLine, NewLogTurtle(), out)

	lines = []string{"output sum :a :b", "end"}
	require.NoError(t, InterpretLine(`to add :a :b`, env))
	assert.Equal(t, 1, env.FrameDepth())

	result, err := evalString(t, env, "add 2 3")
	require.NoError(t, err)
	assert.Equal(t, "5", result.Value().AsWord())
}

func TestPrintWritesToEnvironmentWriter(t *testing.T) {
	out := &bytes.Buffer{}
	env := newTestEnv(t, out)
	require.NoError(t, InterpretLine("print sum 2 3", env))
	assert.Equal(t, "5\n", out.String())
}

func TestRepeatRunsBodyNTimes(t *testing.T) {
	out := &bytes.Buffer{}
	env := newTestEnv(t, out)
	require.NoError(t, InterpretLine(`repeat 3 [print "hi]`, env))
	assert.Equal(t, "hi\nhi\nhi\n", out.String())
}

func TestIfElseBranches(t *testing.T) {
	out := &bytes.Buffer{}
	env := newTestEnv(t, out)
	require.NoError(t, InterpretLine(`ifelse 1 = 1 [print "yes] [print "no]`, env))
	assert.Equal(t, "yes\n", out.String())
}

func TestIfNonBooleanConditionErrors(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	err := InterpretLine(`if 5 [print "oops]`, env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "First argument to 'if' is not True or False: 5")
}

func TestLtAliasResolvesToLeftNotLessp(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	proc, ok := env.ResolveProcedure("lt")
	require.True(t, ok)
	assert.Equal(t, "left", proc.Name)
}
