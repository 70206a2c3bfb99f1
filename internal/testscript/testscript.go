//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package testscript runs a Logo source file against inline "; expect"
// comments and reports which printed lines matched, grounded on
// original_source/logo_test.py's capture-and-diff harness.
package testscript

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nfiedler/goglyph/logo"
)

// expectPrefix is the comment marker introducing an expected output line,
// matching original_source/logo_test.py's EXPECT_STRING.
const expectPrefix = "; expect"

// Expectation is one "; expect" comment found in the script, paired with
// the 1-based source line it appeared on.
type Expectation struct {
	Text string
	Line int
}

// Mismatch describes one expectation that did not match the printed
// output at the same position.
type Mismatch struct {
	Line     int
	Expected string
	Actual   string
}

// Report is the outcome of running a script: every expectation found, the
// full captured output, and the mismatches between them in order.
type Report struct {
	Expectations []Expectation
	Output       []string
	Mismatches   []Mismatch
}

// Passed reports whether every expectation matched.
func (r *Report) Passed() bool { return len(r.Mismatches) == 0 }

// Summary renders a one-line pass/fail count in original_source/
// logo_test.py's "N tested; M failed." phrasing.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d tested; %d failed.", len(r.Expectations), len(r.Mismatches))
}

// Run interprets the Logo source at path, collecting both its printed
// output and its "; expect" comments, then diffs them positionally.
func Run(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, expectations, err := readScript(f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	cursor := 0
	nextLine := func() (string, error) {
		if cursor >= len(lines) {
			return "", io.EOF
		}
		line := lines[cursor]
		cursor++
		return logo.StripComment(line), nil
	}

	env := logo.NewEnvironment(nextLine, logo.NewLogTurtle(), &buf)
	for {
		line, err := nextLine()
		if err == io.EOF {
			break
		}
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if trimmed == "quit" || trimmed == "exit" || trimmed == "bye" {
			break
		}
		// Errors are reported the same way the interactive REPL does: the
		// loop continues so later expectations can still be checked.
		if err := logo.InterpretLine(line, env); err != nil {
			fmt.Fprintln(&buf, err)
		}
	}

	output := strings.Split(buf.String(), "\n")
	report := &Report{Expectations: expectations, Output: output}
	for i, exp := range expectations {
		if i >= len(output) || output[i] != exp.Text {
			actual := ""
			if i < len(output) {
				actual = output[i]
			}
			report.Mismatches = append(report.Mismatches, Mismatch{
				Line:     exp.Line,
				Expected: exp.Text,
				Actual:   actual,
			})
		}
	}
	return report, nil
}

// readScript reads every line of r, returning them verbatim alongside the
// "; expect" comments found, extracted the way original_source/
// logo_test.py's pop_line does: the text following "; expect " on that
// line, trailing newline excluded.
func readScript(r io.Reader) ([]string, []Expectation, error) {
	var lines []string
	var expectations []Expectation
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		lines = append(lines, line)
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, expectPrefix) {
			rest := strings.SplitN(trimmed, expectPrefix, 2)[1]
			rest = strings.TrimPrefix(rest, " ")
			expectations = append(expectations, Expectation{Text: rest, Line: lineNo})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return lines, expectations, nil
}
