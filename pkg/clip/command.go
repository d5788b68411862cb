// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"fmt"

	"tailscale.com/util/set"
)

// Command is one node of the command tree: its parameter declarations,
// its subcommands, and an optional action. A command without an action,
// when it is the terminal node of a parse, means "show help".
//
// Registration is not supported during or after a parse; build the whole
// tree first. Registration invariant violations are programmer errors and
// panic.
type Command struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Aliases     []string
	Hidden      bool

	options []*Option
	flags   []*Flag
	args    []*Argument
	subs    []*Command
	parent  *Command
	action  func(*Context) error

	// paramNames tracks registered option/flag names ("--long", "-s")
	// for duplicate detection; subNames does the same for child command
	// names and aliases.
	paramNames set.Set[string]
	subNames   set.Set[string]
}

// New returns an empty command node.
func New(name, desc string) *Command {
	if name == "" {
		panic("clip: command must have a name")
	}
	return &Command{
		Name:        name,
		Description: desc,
		paramNames:  make(set.Set[string]),
		subNames:    make(set.Set[string]),
	}
}

// AddOption registers an option on the command.
func (c *Command) AddOption(o *Option) *Command {
	c.claimParamNames("option", o.Long, o.Short)
	c.options = append(c.options, o)
	return c
}

// AddFlag registers a flag on the command.
func (c *Command) AddFlag(f *Flag) *Command {
	c.claimParamNames("flag", f.Long, f.Short)
	c.flags = append(c.flags, f)
	return c
}

// AddArgument registers a positional argument. Registration order defines
// positional order; once an optional argument is registered, no further
// required argument may be.
func (c *Command) AddArgument(a *Argument) *Command {
	if a.Required {
		for _, prev := range c.args {
			if !prev.Required {
				panic(fmt.Sprintf("clip: command %s: required argument %s registered after optional %s", c.Name, a.Name, prev.Name))
			}
		}
	}
	for _, prev := range c.args {
		if prev.Name == a.Name {
			panic(fmt.Sprintf("clip: command %s: duplicate argument %s", c.Name, a.Name))
		}
	}
	c.args = append(c.args, a)
	return c
}

// AddCommand registers sub as a child and sets its parent pointer.
func (c *Command) AddCommand(sub *Command) *Command {
	names := append([]string{sub.Name}, sub.Aliases...)
	for _, name := range names {
		if c.subNames.Contains(name) {
			panic(fmt.Sprintf("clip: command %s: duplicate subcommand name %q", c.Name, name))
		}
	}
	for _, name := range names {
		c.subNames.Add(name)
	}
	sub.parent = c
	c.subs = append(c.subs, sub)
	return c
}

// SetAction sets the command's action callback, making it executable.
func (c *Command) SetAction(fn func(*Context) error) *Command {
	c.action = fn
	return c
}

// Options returns the command's option declarations in registration order.
func (c *Command) Options() []*Option { return c.options }

// Flags returns the command's flag declarations in registration order.
func (c *Command) Flags() []*Flag { return c.flags }

// Arguments returns the command's argument declarations in positional order.
func (c *Command) Arguments() []*Argument { return c.args }

// Commands returns the command's children in registration order.
func (c *Command) Commands() []*Command { return c.subs }

// Parent returns the enclosing command, or nil at the root.
func (c *Command) Parent() *Command { return c.parent }

// Action returns the command's action callback, or nil.
func (c *Command) Action() func(*Context) error { return c.action }

// Path returns the command names from the root down to c.
func (c *Command) Path() []string {
	if c.parent == nil {
		return []string{c.Name}
	}
	return append(c.parent.Path(), c.Name)
}

// Find walks the tree along the given child names (aliases included) and
// returns the command reached, or nil.
func (c *Command) Find(path ...string) *Command {
	cur := c
	for _, name := range path {
		cur = cur.findCommand(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// findCommand returns the direct child matching name or one of its
// aliases, or nil. Matching never recurses upward; only direct children
// of the current node can be descended into.
func (c *Command) findCommand(name string) *Command {
	if !c.subNames.Contains(name) {
		return nil
	}
	for _, sub := range c.subs {
		if sub.Name == name {
			return sub
		}
		for _, alias := range sub.Aliases {
			if alias == name {
				return sub
			}
		}
	}
	return nil
}

// findOption looks up an option by long name, locally first and then
// through ancestors. The parent recursion is what makes options declared
// on an ancestor command settable from within a subcommand's arguments.
func (c *Command) findOption(long string) *Option {
	for _, o := range c.options {
		if o.Long == long {
			return o
		}
	}
	if c.parent != nil {
		return c.parent.findOption(long)
	}
	return nil
}

// findOptionShort looks up an option by short name, recursing to parents.
func (c *Command) findOptionShort(short string) *Option {
	for _, o := range c.options {
		if o.Short == short {
			return o
		}
	}
	if c.parent != nil {
		return c.parent.findOptionShort(short)
	}
	return nil
}

// findFlag looks up a flag by long name, recursing to parents.
func (c *Command) findFlag(long string) *Flag {
	for _, f := range c.flags {
		if f.Long == long {
			return f
		}
	}
	if c.parent != nil {
		return c.parent.findFlag(long)
	}
	return nil
}

// findFlagShort looks up a flag by short name, recursing to parents.
func (c *Command) findFlagShort(short string) *Flag {
	for _, f := range c.flags {
		if f.Short == short {
			return f
		}
	}
	if c.parent != nil {
		return c.parent.findFlagShort(short)
	}
	return nil
}

// reset clears parsed values on the whole subtree so the tree can be
// reused across engine runs.
func (c *Command) reset() {
	for _, o := range c.options {
		o.reset()
	}
	for _, f := range c.flags {
		f.reset()
	}
	for _, a := range c.args {
		a.reset()
	}
	for _, sub := range c.subs {
		sub.reset()
	}
}

func (c *Command) claimParamNames(kind, long, short string) {
	var keys []string
	if long != "" {
		keys = append(keys, "--"+long)
	}
	if short != "" {
		keys = append(keys, "-"+short)
	}
	for _, key := range keys {
		if c.paramNames.Contains(key) {
			panic(fmt.Sprintf("clip: command %s: duplicate %s name %s", c.Name, kind, key))
		}
	}
	for _, key := range keys {
		c.paramNames.Add(key)
	}
}
