//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
)

// quitWords are the case-insensitive tokens that end a read-eval loop
// exactly as if standard input had closed (original_source/logo.py's
// read_eval_loop).
var quitWords = map[string]bool{"quit": true, "exit": true, "bye": true}

// StripComment returns the prefix of line preceding the first ";",
// matching original_source/logo.py's strip_comment.
func StripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

// LineSource supplies the next line of source for the top-level read-eval
// loop, and a separate continuation-line supplier used while parsing a
// "to ... end" definition. Both return io.EOF to end the loop.
type LineSource interface {
	NextLine() (string, error)
	NextContinuationLine() (string, error)
	Close() error
}

// interactiveSource reads from a readline-backed terminal, prompting with
// "?" at top level and ">" for continuation lines, and coloring the
// prompt when color is enabled (spec.md's ambient CLI behavior,
// grounded on the teacher's repl() prompting shape in main.go).
type interactiveSource struct {
	rl         *readline.Instance
	prompt     string
	contPrompt string
}

// NewInteractiveSource constructs a LineSource reading from the terminal
// via readline, with history and line editing.
func NewInteractiveSource(useColor bool) (LineSource, error) {
	prompt, contPrompt := "? ", "> "
	if useColor {
		prompt = color.CyanString("? ")
		contPrompt = color.CyanString("> ")
	}
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, wrapError(err)
	}
	return &interactiveSource{rl: rl, prompt: prompt, contPrompt: contPrompt}, nil
}

func (s *interactiveSource) readLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	if err != nil {
		return "", io.EOF
	}
	return StripComment(line), nil
}

func (s *interactiveSource) NextLine() (string, error) { return s.readLine(s.prompt) }

func (s *interactiveSource) NextContinuationLine() (string, error) { return s.readLine(s.contPrompt) }

func (s *interactiveSource) Close() error { return s.rl.Close() }

// fileSource reads pre-recorded lines from a file, echoing each line
// alongside its prompt as it is consumed (original_source/logo.py's
// generate_lines), so a transcript run against a file looks the same as
// an interactive session.
type fileSource struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewFileSource constructs a LineSource that reads successive lines from
// r, echoing each to out prefixed with its prompt.
func NewFileSource(r io.Reader, out io.Writer) LineSource {
	return &fileSource{scanner: bufio.NewScanner(r), out: out}
}

func (s *fileSource) readLine(prompt string) (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", wrapError(err)
		}
		return "", io.EOF
	}
	line := s.scanner.Text()
	fmt.Fprintf(s.out, "%s %s\n", prompt, line)
	return StripComment(line), nil
}

func (s *fileSource) NextLine() (string, error) { return s.readLine("?") }

func (s *fileSource) NextContinuationLine() (string, error) { return s.readLine(">") }

func (s *fileSource) Close() error { return nil }

// Run drives a read-eval-print loop against src until it reports io.EOF
// (or the user types a quit word), writing diagnostics to diag. Errors
// evaluating a line are reported and do not stop the loop, matching
// original_source/logo.py's read_eval_loop.
func Run(env *Environment, src LineSource, diag io.Writer) {
	for {
		line, err := src.NextLine()
		if err != nil {
			fmt.Fprintln(diag, "Goodbye!")
			return
		}
		if quitWords[strings.ToLower(strings.TrimSpace(line))] {
			fmt.Fprintln(diag, "Goodbye!")
			return
		}
		if err := InterpretLine(line, env); err != nil {
			log.WithError(err).Debug("logo: line failed")
			fmt.Fprintln(diag, errorMessage(err))
		}
	}
}

// errorMessage extracts the user-facing message from err, unwrapping the
// InterpreterError/SyntaxError types defined in this package (including
// through pkg/errors' stack-wrapping) and falling back to err.Error() for
// anything else (e.g. a wrapped I/O error).
func errorMessage(err error) string {
	var ie *InterpreterError
	if errors.As(err, &ie) {
		return ie.Message
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
