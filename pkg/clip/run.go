// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Renderer formats help text for a command. The engine decides when help
// is shown and for which node; formatting belongs to the renderer.
type Renderer interface {
	Render(cmd *Command) string
}

// Run parses args against root and dispatches. Parse and invoke stay
// distinct steps internally: help requests render help for the deepest
// resolved command and return ErrHelp; parse failures render help for the
// terminal command on stderr and return the *ParseError; otherwise the
// terminal command's action runs and its error is returned as-is. A
// terminal command without an action renders its help and returns
// ErrNoAction.
func (e *Engine) Run(root *Command, args []string) error {
	return e.run(root, args, os.Stdout, os.Stderr)
}

func (e *Engine) run(root *Command, args []string, stdout, stderr io.Writer) error {
	res, err := e.Parse(root, args)
	if res.Help {
		fmt.Fprint(stdout, e.renderHelp(res.Command))
		return ErrHelp
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, e.renderHelp(res.Command))
		return err
	}
	if res.Command.action == nil {
		fmt.Fprint(stdout, e.renderHelp(res.Command))
		return ErrNoAction
	}
	return res.Command.action(res.Context)
}

func (e *Engine) renderHelp(cmd *Command) string {
	if e.renderer != nil {
		return e.renderer.Render(cmd)
	}
	return fmt.Sprintf("Usage: %s\n", strings.Join(cmd.Path(), " "))
}

// Exit codes distinguishing the three completion signals.
const (
	ExitOK        = 0 // success, or a clean help request
	ExitActionErr = 1 // the action itself failed
	ExitParseErr  = 2 // user input could not be parsed
)

// ExitCode maps a Run error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrHelp), errors.Is(err, ErrNoAction):
		return ExitOK
	default:
		var perr *ParseError
		if errors.As(err, &perr) {
			return ExitParseErr
		}
		return ExitActionErr
	}
}

// Main runs root against args with the default configuration and the
// given renderer, returning the process exit code.
func Main(root *Command, args []string, r Renderer) int {
	e := NewEngine(DefaultConfig()).SetRenderer(r)
	return ExitCode(e.Run(root, args))
}
