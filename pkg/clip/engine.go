// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"strings"
)

const (
	helpWord  = "help"
	helpShort = "h"
)

// Config controls engine behavior. It is fixed at engine construction and
// never mutated mid-parse.
type Config struct {
	// AllowUnknownOptions silently skips unrecognized option tokens
	// instead of reporting UnknownOptionError.
	AllowUnknownOptions bool
	// DoubleHyphenDelimiter makes a bare "--" force every remaining
	// token positional.
	DoubleHyphenDelimiter bool
	// AllowOptionsAfterArgs lets options and positionals interleave
	// freely. When false, once a positional has been consumed,
	// option-looking tokens are treated as positional values
	// (POSIX-strict ordering).
	AllowOptionsAfterArgs bool
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		DoubleHyphenDelimiter: true,
		AllowOptionsAfterArgs: true,
	}
}

// Engine parses a token stream against a command tree.
type Engine struct {
	cfg      Config
	renderer Renderer
}

// NewEngine returns an engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// SetRenderer installs the help renderer used by Run. Without one, Run
// falls back to a single usage line.
func (e *Engine) SetRenderer(r Renderer) *Engine {
	e.renderer = r
	return e
}

// Result is the outcome of a parse: the terminal command reached by
// descending through matched subcommand names and its resolution context
// (chained to ancestors via Parent). Help reports that help was requested
// during the scan; the caller decides how to render it.
type Result struct {
	Command *Command
	Context *Context
	Help    bool
}

// outcome accumulates scan state so multiple independent user errors can
// coexist before the final help/exit decision.
type outcome struct {
	errs []error
	help bool
}

// Parse is shorthand for NewEngine(DefaultConfig()).Parse.
func Parse(root *Command, args []string) (*Result, error) {
	return NewEngine(DefaultConfig()).Parse(root, args)
}

// Parse consumes args left to right against the tree rooted at root.
//
// User-input errors are accumulated, not aborted on: the returned error
// is a *ParseError carrying every problem found, and the Result is still
// returned alongside it so the caller can render help for the most
// specific resolvable command. A nil root is a programmer error and
// panics.
func (e *Engine) Parse(root *Command, args []string) (*Result, error) {
	if root == nil {
		panic("clip: Parse called with nil root command")
	}
	root.reset()

	cur := root
	ctx := newContext(root, nil)
	pos := 0 // positional cursor, reset on every descent
	forced := false
	sawPositional := false
	var out outcome

	for i := 0; i < len(args); i++ {
		tok := args[i]

		if !forced && e.cfg.DoubleHyphenDelimiter && tok == "--" {
			forced = true
			continue
		}

		if !forced && len(tok) > 1 && strings.HasPrefix(tok, "-") {
			if !e.cfg.AllowOptionsAfterArgs && sawPositional {
				e.assignPositional(cur, ctx, &pos, tok, &out)
				continue
			}
			if strings.HasPrefix(tok, "--") && len(tok) > 2 {
				i = e.parseLong(cur, ctx, args, i, &out)
			} else {
				i = e.parseShort(cur, ctx, args, i, &pos, &sawPositional, &out)
			}
			continue
		}

		if !forced {
			if i == 0 && tok == helpWord {
				out.help = true
				continue
			}
			// A bare token matching a child command name is always a
			// descent, never a positional value, even with unfilled
			// required positionals pending.
			if sub := cur.findCommand(tok); sub != nil {
				cur = sub
				ctx = newContext(sub, ctx)
				pos = 0
				continue
			}
		}

		sawPositional = true
		e.assignPositional(cur, ctx, &pos, tok, &out)
	}

	res := &Result{Command: cur, Context: ctx}

	if out.help {
		res.Help = true
		return res, nil
	}

	// Validate every argument declared on the terminal command.
	for _, a := range cur.args {
		n := ctx.count(a.Name)
		if n < a.arity.Min {
			if a.Required {
				out.errs = append(out.errs, &RequiredArgumentMissingError{Name: a.Name, Command: cur.Name})
			} else {
				out.errs = append(out.errs, &InsufficientValuesError{Name: a.Name, Min: a.arity.Min, Got: n})
			}
		}
	}

	// Fill declared defaults from the terminal context outward. Each
	// context gets its own command's defaults; nothing is copied
	// between contexts.
	for c := ctx; c != nil; c = c.parent {
		for _, o := range c.cmd.options {
			if _, ok := c.values[o.Name()]; ok {
				continue
			}
			if o.hasDefaults {
				c.setValues(o.Name(), o.Defaults())
			}
		}
		for _, a := range c.cmd.args {
			if _, ok := c.values[a.Name]; ok {
				continue
			}
			if a.hasDefaults {
				c.setValues(a.Name, a.Defaults())
			}
		}
	}

	if len(out.errs) > 0 {
		return res, &ParseError{Errs: out.errs}
	}
	return res, nil
}

// parseLong handles "--name" and "--name=value" tokens. It returns the
// index of the last token consumed.
func (e *Engine) parseLong(cur *Command, ctx *Context, args []string, i int, out *outcome) int {
	name, seed, hasSeed := strings.Cut(args[i][2:], "=")
	if name == helpWord {
		out.help = true
		return i
	}
	if f := cur.findFlag(name); f != nil {
		f.setValue()
		ctx.setFlag(f.Name())
		return i
	}
	if o := cur.findOption(name); o != nil {
		return e.gather(o, ctx, args, i, seed, hasSeed, out)
	}
	if e.cfg.AllowUnknownOptions {
		return i
	}
	out.errs = append(out.errs, &UnknownOptionError{Name: "--" + name, Command: cur.Name})
	return i
}

// parseShort handles "-x", "-x=value", and "-xyz" cluster tokens. It
// returns the index of the last token consumed.
func (e *Engine) parseShort(cur *Command, ctx *Context, args []string, i int, pos *int, sawPositional *bool, out *outcome) int {
	tok := args[i]
	body := tok[1:]

	if name, val, ok := strings.Cut(body, "="); ok {
		if len(name) != 1 {
			if !e.cfg.AllowUnknownOptions {
				out.errs = append(out.errs, &UnknownOptionError{Name: tok, Command: cur.Name})
			}
			return i
		}
		o := cur.findOptionShort(name)
		if o == nil {
			if !e.cfg.AllowUnknownOptions {
				out.errs = append(out.errs, &UnknownOptionError{Name: "-" + name, Command: cur.Name})
			}
			return i
		}
		// The "=" form carries exactly one value; no further tokens
		// are pulled.
		if o.arity.Min > 1 {
			out.errs = append(out.errs, &InsufficientValuesError{Name: o.Name(), Min: o.arity.Min, Got: 1})
			return i
		}
		ctx.setValues(o.Name(), []string{val})
		o.setValues([]string{val})
		return i
	}

	if len(body) == 1 {
		// A bare -h always requests help, registered or not.
		if body == helpShort {
			out.help = true
			return i
		}
		if f := cur.findFlagShort(body); f != nil {
			f.setValue()
			ctx.setFlag(f.Name())
			if f.Long == helpWord {
				out.help = true
			}
			return i
		}
		if o := cur.findOptionShort(body); o != nil {
			return e.gather(o, ctx, args, i, "", false, out)
		}
		if !e.cfg.AllowOptionsAfterArgs {
			*sawPositional = true
			e.assignPositional(cur, ctx, pos, tok, out)
			return i
		}
		if !e.cfg.AllowUnknownOptions {
			out.errs = append(out.errs, &UnknownOptionError{Name: tok, Command: cur.Name})
		}
		return i
	}

	// Clusters resolve to flags only: -abc means -a -b -c. A cluster
	// character can never name an option taking a value.
	for _, r := range body {
		ch := string(r)
		f := cur.findFlagShort(ch)
		if f == nil {
			if !e.cfg.AllowUnknownOptions {
				out.errs = append(out.errs, &UnknownOptionError{Name: "-" + ch, Command: cur.Name})
			}
			continue
		}
		f.setValue()
		ctx.setFlag(f.Name())
		if f.Long == helpWord {
			out.help = true
		}
	}
	return i
}

// gather performs arity-bounded greedy value consumption for an option:
// starting from an optional "=" seed, it pulls following tokens until the
// arity max is reached, the stream ends, or a token looking like an
// option appears. It returns the index of the last token consumed.
func (e *Engine) gather(o *Option, ctx *Context, args []string, i int, seed string, hasSeed bool, out *outcome) int {
	var vals []string
	if hasSeed {
		vals = append(vals, seed)
	}
	for len(vals) < o.arity.Max && i+1 < len(args) {
		next := args[i+1]
		if strings.HasPrefix(next, "-") {
			break
		}
		vals = append(vals, next)
		i++
	}
	switch n := len(vals); {
	case n > o.arity.Max:
		out.errs = append(out.errs, &TooManyValuesError{Name: o.Name(), Max: o.arity.Max, Got: n})
	case n < o.arity.Min:
		out.errs = append(out.errs, &InsufficientValuesError{Name: o.Name(), Min: o.arity.Min, Got: n})
	case n == 0:
		// Zero values with min==0: record nothing, so absence stays
		// distinguishable from presence for defaulting.
	default:
		ctx.setValues(o.Name(), vals)
		o.setValues(vals)
	}
	return i
}

// assignPositional stores one bare token into the argument slot at the
// positional cursor. The cursor advances only once the slot reaches its
// arity max, so a multi-value positional fills completely before the next
// declared argument starts receiving values.
func (e *Engine) assignPositional(cur *Command, ctx *Context, pos *int, tok string, out *outcome) {
	if *pos >= len(cur.args) {
		out.errs = append(out.errs, &UnexpectedPositionalError{Value: tok, Command: cur.Name})
		return
	}
	a := cur.args[*pos]
	n := ctx.count(a.Name)
	if n >= a.arity.Max {
		out.errs = append(out.errs, &TooManyValuesError{Name: a.Name, Max: a.arity.Max, Got: n + 1})
		return
	}
	ctx.appendValue(a.Name, tok)
	a.appendValue(tok)
	if n+1 >= a.arity.Max {
		*pos++
	}
}
