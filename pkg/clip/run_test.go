// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yeetrun/clip/pkg/codec"
)

func TestRunInvokesAction(t *testing.T) {
	var gotName string
	root := New("greet", "")
	root.AddArgument(NewArgument("name", "", codec.String, true))
	root.SetAction(func(ctx *Context) error {
		gotName, _ = ctx.String("name")
		return nil
	})

	var stdout, stderr bytes.Buffer
	e := NewEngine(DefaultConfig())
	if err := e.run(root, []string{"alice"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if gotName != "alice" {
		t.Errorf("action saw name %q", gotName)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunActionError(t *testing.T) {
	boom := errors.New("boom")
	root := New("tool", "")
	root.SetAction(func(*Context) error { return boom })

	var stdout, stderr bytes.Buffer
	e := NewEngine(DefaultConfig())
	if err := e.run(root, nil, &stdout, &stderr); !errors.Is(err, boom) {
		t.Errorf("err = %v, want the action's error", err)
	}
}

func TestRunHelp(t *testing.T) {
	root := New("tool", "")
	root.SetAction(func(*Context) error { t.Error("action ran"); return nil })

	var stdout, stderr bytes.Buffer
	e := NewEngine(DefaultConfig())
	err := e.run(root, []string{"--help"}, &stdout, &stderr)
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("err = %v, want ErrHelp", err)
	}
	if !strings.Contains(stdout.String(), "Usage: tool") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunNoAction(t *testing.T) {
	root := New("tool", "")
	var stdout, stderr bytes.Buffer
	e := NewEngine(DefaultConfig())
	err := e.run(root, nil, &stdout, &stderr)
	if !errors.Is(err, ErrNoAction) {
		t.Fatalf("err = %v, want ErrNoAction", err)
	}
	if stdout.Len() == 0 {
		t.Error("no help rendered for actionless command")
	}
}

func TestRunParseErrorReportsOnStderr(t *testing.T) {
	root := New("tool", "")
	root.SetAction(func(*Context) error { t.Error("action ran"); return nil })

	var stdout, stderr bytes.Buffer
	e := NewEngine(DefaultConfig())
	err := e.run(root, []string{"--bogus"}, &stdout, &stderr)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
	out := stderr.String()
	if !strings.Contains(out, "--bogus") {
		t.Errorf("stderr does not name the bad option: %q", out)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("stderr carries no help text: %q", out)
	}
}

type staticRenderer string

func (r staticRenderer) Render(*Command) string { return string(r) }

func TestRunUsesRenderer(t *testing.T) {
	root := New("tool", "")
	var stdout, stderr bytes.Buffer
	e := NewEngine(DefaultConfig()).SetRenderer(staticRenderer("CUSTOM HELP\n"))
	if err := e.run(root, []string{"-h"}, &stdout, &stderr); !errors.Is(err, ErrHelp) {
		t.Fatal(err)
	}
	if stdout.String() != "CUSTOM HELP\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{ErrHelp, ExitOK},
		{ErrNoAction, ExitOK},
		{&ParseError{Errs: []error{errors.New("x")}}, ExitParseErr},
		{errors.New("action failed"), ExitActionErr},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
