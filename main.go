//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command goglyph runs the Logo interpreter, either interactively or
// against a source file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nfiedler/goglyph/internal/testscript"
	"github.com/nfiedler/goglyph/logo"
)

var (
	noColor  bool
	trace    bool
	testMode bool

	rootCmd = &cobra.Command{
		Use:   "goglyph [file]",
		Short: "goglyph is a Logo interpreter",
		Long: `goglyph interprets Logo source. With no arguments it starts an
interactive read-eval-print loop; given a file it reads and interprets
that file's lines instead of prompting at a terminal.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runRoot,
	}
)

func init() {
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored prompts")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "log frame and turtle activity at debug level")
	rootCmd.Flags().BoolVar(&testMode, "test", false, `run the given file as a test script, checking "; expect" comments`)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := logo.DefaultConfig()
	cfg.Color = !noColor
	cfg.Trace = trace
	cfg.ApplyLogging()

	if testMode {
		if len(args) != 1 {
			return fmt.Errorf("--test requires a source file argument")
		}
		return runTestScript(args[0])
	}

	if len(args) == 1 {
		return runFile(cfg, args[0])
	}
	return runInteractive(cfg)
}

func runInteractive(cfg *logo.Config) error {
	src, err := logo.NewInteractiveSource(cfg.Color)
	if err != nil {
		return err
	}
	defer src.Close()
	env := cfg.NewEnvironment(src.NextContinuationLine)

	welcome := "Welcome to goglyph! Try 'quit' or Ctrl-D to exit."
	if cfg.Color {
		welcome = color.CyanString(welcome)
	}
	fmt.Println(welcome)

	logo.Run(env, src, os.Stdout)
	return nil
}

func runFile(cfg *logo.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src := logo.NewFileSource(f, os.Stdout)
	env := cfg.NewEnvironment(src.NextContinuationLine)
	logo.Run(env, src, os.Stdout)
	return nil
}

func runTestScript(path string) error {
	report, err := testscript.Run(path)
	if err != nil {
		return err
	}
	for _, m := range report.Mismatches {
		fmt.Printf("test failed at line %d\n", m.Line)
		fmt.Printf("  expected: %s\n", m.Expected)
		fmt.Printf("   printed: %s\n", m.Actual)
	}
	fmt.Println(report.Summary())
	if !report.Passed() {
		os.Exit(1)
	}
	return nil
}

func main() {
	if err := Execute(); err != nil {
		log.WithError(err).Error("goglyph: fatal")
		os.Exit(1)
	}
}
