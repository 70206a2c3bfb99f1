//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Config holds the options the cobra command line surfaces, keeping the
// logo package itself free of flag parsing.
type Config struct {
	// Color enables ANSI-colored prompts in interactive mode.
	Color bool
	// Trace enables debug-level logging of frame pushes/pops and every
	// turtle call.
	Trace bool
	// Writer receives the output of "print"/"show"/"type". Defaults to
	// os.Stdout when nil.
	Writer io.Writer
}

// DefaultConfig returns a Config with coloring enabled, tracing disabled,
// and output directed to standard output.
func DefaultConfig() *Config {
	return &Config{Color: true, Writer: os.Stdout}
}

// ApplyLogging configures the package-wide logger according to c.Trace,
// matching the teacher's convention of a single process-wide logrus
// logger rather than per-component instances.
func (c *Config) ApplyLogging() {
	if c.Trace {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// NewEnvironment builds an Environment using this Config's writer and a
// log-backed turtle (the default backend whenever no graphical display is
// requested), wired to nextLine for continuation lines.
func (c *Config) NewEnvironment(nextLine ContinuationLineFunc) *Environment {
	w := c.Writer
	if w == nil {
		w = os.Stdout
	}
	return NewEnvironment(nextLine, NewLogTurtle(), w)
}
