// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for help handling.
var (
	// ErrHelp is returned by Run when help was requested and rendered.
	// Callers should treat this as a successful outcome.
	ErrHelp = errors.New("help requested")

	// ErrNoAction is returned by Run when the terminal command has no
	// action; its help is rendered instead.
	ErrNoAction = errors.New("command has no action")
)

// UnknownOptionError is returned when an option or flag token does not
// match any declaration on the current command or its ancestors.
type UnknownOptionError struct {
	Name    string // as written, including dashes (e.g. "--bogus", "-x")
	Command string // the command being parsed when it appeared
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Name)
}

// InsufficientValuesError is returned when fewer values were gathered for
// a parameter than its arity requires.
type InsufficientValuesError struct {
	Name string
	Min  int
	Got  int
}

func (e *InsufficientValuesError) Error() string {
	return fmt.Sprintf("%s requires at least %d value(s), got %d", e.Name, e.Min, e.Got)
}

// TooManyValuesError is returned when more values were supplied for a
// parameter than its arity permits.
type TooManyValuesError struct {
	Name string
	Max  int
	Got  int
}

func (e *TooManyValuesError) Error() string {
	return fmt.Sprintf("%s accepts at most %d value(s), got %d", e.Name, e.Max, e.Got)
}

// UnexpectedPositionalError is returned for a bare token with no declared
// argument slot left to fill.
type UnexpectedPositionalError struct {
	Value   string
	Command string
}

func (e *UnexpectedPositionalError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("'%s' got unexpected argument %q", e.Command, e.Value)
	}
	return fmt.Sprintf("unexpected argument %q", e.Value)
}

// RequiredArgumentMissingError is returned when a required positional
// argument received no value.
type RequiredArgumentMissingError struct {
	Name    string
	Command string
}

func (e *RequiredArgumentMissingError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("'%s' requires argument %s", e.Command, e.Name)
	}
	return fmt.Sprintf("missing required argument %s", e.Name)
}

// NoValueError is returned by value accessors when a parameter has
// neither parsed values nor defaults.
type NoValueError struct {
	Name string
}

func (e *NoValueError) Error() string {
	return fmt.Sprintf("no value set for %s", e.Name)
}

// DecodeError wraps a codec failure with the parameter it occurred on.
// It is surfaced at access time, not at parse time.
type DecodeError struct {
	Name  string
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ParseError carries every user-input error accumulated during one parse
// run. The engine keeps scanning after the first problem so diagnostics
// cover as much of the input as practical.
type ParseError struct {
	Errs []error
}

func (e *ParseError) Error() string {
	if len(e.Errs) == 1 {
		return e.Errs[0].Error()
	}
	var b strings.Builder
	for i, err := range e.Errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() []error {
	return e.Errs
}
