//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioBasicPrint covers concrete scenario 2: nested procedure
// application inside a print statement.
func TestScenarioBasicPrint(t *testing.T) {
	out := &bytes.Buffer{}
	env := newTestEnv(t, out)
	require.NoError(t, InterpretLine("print sum 10 difference 7 3", env))
	assert.Equal(t, "14\n", out.String())
}

// TestScenarioNestedSentencePrinting covers concrete scenario 3.
func TestScenarioNestedSentencePrinting(t *testing.T) {
	out := &bytes.Buffer{}
	env := newTestEnv(t, out)
	require.NoError(t, InterpretLine("print [a [b c] d]", env))
	assert.Equal(t, "a [b c] d\n", out.String())
}

// TestScenarioUserProcedureWithOutput covers concrete scenario 4: a
// two-line "to ... end" definition whose body uses "output".
func TestScenarioUserProcedureWithOutput(t *testing.T) {
	lines := []string{"output sum :n :n", "end"}
	i := 0
	nextLine := func() (string, error) {
		line := lines[i]
		i++
		return line, nil
	}
	out := &bytes.Buffer{}
	env := NewEnvironment(nextLine, NewLogTurtle(), out)

	require.NoError(t, InterpretLine("to double :n", env))
	require.NoError(t, InterpretLine("print double 5", env))
	assert.Equal(t, "10\n", out.String())
}

// TestScenarioVariableBindingSemantics covers concrete scenario 5: a
// repeated "make" rebinds the same global name.
func TestScenarioVariableBindingSemantics(t *testing.T) {
	out := &bytes.Buffer{}
	env := newTestEnv(t, out)
	require.NoError(t, InterpretLine(`make "x 1`, env))
	require.NoError(t, InterpretLine(`make "x 2`, env))
	require.NoError(t, InterpretLine("print :x", env))
	assert.Equal(t, "2\n", out.String())
}

// TestScenarioErrorReporting covers concrete scenario 6: unbalanced
// grouping reports an "Expected ")"" error naming the cursor position.
func TestScenarioErrorReporting(t *testing.T) {
	env := newTestEnv(t, &bytes.Buffer{})
	err := InterpretLine("print sum 1 (sum 2 3 4)", env)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), `Expected ")"`))
	assert.Contains(t, err.Error(), ">>")
}

// TestScenarioQuitHandling covers concrete scenario 7: a line source
// yielding a quit word causes Run to print "Goodbye!" and return.
func TestScenarioQuitHandling(t *testing.T) {
	src := &scriptedSource{lines: []string{"bye"}}
	diag := &bytes.Buffer{}
	env := newTestEnv(t, &bytes.Buffer{})
	Run(env, src, diag)
	assert.Equal(t, "Goodbye!\n", diag.String())
}

// scriptedSource is a minimal LineSource over a fixed slice of lines, used
// to exercise Run without any real terminal or file.
type scriptedSource struct {
	lines []string
	pos   int
}

func (s *scriptedSource) next() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

func (s *scriptedSource) NextLine() (string, error)             { return s.next() }
func (s *scriptedSource) NextContinuationLine() (string, error) { return s.next() }
func (s *scriptedSource) Close() error                           { return nil }
