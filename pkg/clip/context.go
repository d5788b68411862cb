// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"net/url"
	"slices"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/clip/pkg/codec"
	"tailscale.com/util/mak"
)

// Context is the per-command resolution result: raw string values for
// options and arguments, booleans for flags, and a non-owning link to the
// enclosing command's context. A name that misses locally is looked up in
// the parent before failing, which is how a subcommand transparently sees
// a global option's value.
//
// All accessors decode lazily: the engine stores raw strings only, and
// conversion happens here at access time via the codec package.
type Context struct {
	cmd    *Command
	parent *Context
	values map[string][]string
	flags  map[string]bool
}

func newContext(cmd *Command, parent *Context) *Context {
	return &Context{cmd: cmd, parent: parent}
}

// Command returns the command this context was resolved for.
func (c *Context) Command() *Command { return c.cmd }

// Parent returns the enclosing command's context, or nil at the root.
func (c *Context) Parent() *Context { return c.parent }

// Lookup returns the raw value list stored under name, consulting the
// parent chain on a local miss. Repeated calls are side-effect-free.
func (c *Context) Lookup(name string) ([]string, bool) {
	if vals, ok := c.values[name]; ok {
		return vals, true
	}
	if c.parent != nil {
		return c.parent.Lookup(name)
	}
	return nil, false
}

// Provided reports whether name was explicitly set during parsing,
// anywhere along the context chain.
func (c *Context) Provided(name string) bool {
	if _, ok := c.values[name]; ok {
		return true
	}
	if _, ok := c.flags[name]; ok {
		return true
	}
	if c.parent != nil {
		return c.parent.Provided(name)
	}
	return false
}

// Bool reports whether the named flag was set, consulting the parent
// chain on a local miss.
func (c *Context) Bool(name string) bool {
	if v, ok := c.flags[name]; ok {
		return v
	}
	if c.parent != nil {
		return c.parent.Bool(name)
	}
	return false
}

// Strings returns a copy of the raw value list stored under name.
func (c *Context) Strings(name string) ([]string, error) {
	vals, ok := c.Lookup(name)
	if !ok {
		return nil, &NoValueError{Name: name}
	}
	return slices.Clone(vals), nil
}

// String returns the single (first) raw value stored under name.
func (c *Context) String(name string) (string, error) {
	vals, ok := c.Lookup(name)
	if !ok || len(vals) == 0 {
		return "", &NoValueError{Name: name}
	}
	return vals[0], nil
}

// Int decodes the single value stored under name as an integer.
func (c *Context) Int(name string) (int, error) {
	v, err := c.decodeFirst(name, codec.Int)
	if err != nil {
		return 0, err
	}
	return int(v.(int64)), nil
}

// Ints decodes every value stored under name as an integer.
func (c *Context) Ints(name string) ([]int, error) {
	raws, err := c.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(raws))
	for _, raw := range raws {
		v, err := codec.Decode(codec.Int, raw)
		if err != nil {
			return nil, &DecodeError{Name: name, Value: raw, Err: err}
		}
		out = append(out, int(v.(int64)))
	}
	return out, nil
}

// Uint decodes the single value stored under name as an unsigned integer.
func (c *Context) Uint(name string) (uint64, error) {
	v, err := c.decodeFirst(name, codec.Uint)
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

// Float decodes the single value stored under name as a float.
func (c *Context) Float(name string) (float64, error) {
	v, err := c.decodeFirst(name, codec.Float)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// Duration decodes the single value stored under name as a time.Duration.
func (c *Context) Duration(name string) (time.Duration, error) {
	v, err := c.decodeFirst(name, codec.Duration)
	if err != nil {
		return 0, err
	}
	return v.(time.Duration), nil
}

// URL decodes the single value stored under name as a URL.
func (c *Context) URL(name string) (*url.URL, error) {
	v, err := c.decodeFirst(name, codec.URL)
	if err != nil {
		return nil, err
	}
	return v.(*url.URL), nil
}

// Version decodes the single value stored under name as a semantic
// version.
func (c *Context) Version(name string) (*semver.Version, error) {
	v, err := c.decodeFirst(name, codec.Version)
	if err != nil {
		return nil, err
	}
	return v.(*semver.Version), nil
}

// JSON decodes the single value stored under name into dst, which must be
// a pointer. Unknown fields in the input are tolerated.
func (c *Context) JSON(name string, dst any) error {
	raw, err := c.String(name)
	if err != nil {
		return err
	}
	if err := codec.DecodeJSON(raw, dst); err != nil {
		return &DecodeError{Name: name, Value: raw, Err: err}
	}
	return nil
}

// Decode decodes the single value stored under name according to the
// type tag on its declaration, searching the command chain for the
// declaration the same way value lookup searches the context chain.
func (c *Context) Decode(name string) (any, error) {
	raw, err := c.String(name)
	if err != nil {
		return nil, err
	}
	typ := codec.String
	if o := c.cmd.findOption(name); o != nil {
		typ = o.Type
	} else if a := c.findArgument(name); a != nil {
		typ = a.Type
	}
	v, err := codec.Decode(typ, raw)
	if err != nil {
		return nil, &DecodeError{Name: name, Value: raw, Err: err}
	}
	return v, nil
}

func (c *Context) decodeFirst(name string, typ codec.Type) (any, error) {
	raw, err := c.String(name)
	if err != nil {
		return nil, err
	}
	v, err := codec.Decode(typ, raw)
	if err != nil {
		return nil, &DecodeError{Name: name, Value: raw, Err: err}
	}
	return v, nil
}

func (c *Context) findArgument(name string) *Argument {
	for cmd := c.cmd; cmd != nil; cmd = cmd.parent {
		for _, a := range cmd.args {
			if a.Name == name {
				return a
			}
		}
	}
	return nil
}

// count returns how many values are stored locally under name; parent
// contexts are not consulted.
func (c *Context) count(name string) int {
	return len(c.values[name])
}

func (c *Context) setValues(name string, vals []string) {
	mak.Set(&c.values, name, vals)
}

func (c *Context) appendValue(name, raw string) {
	mak.Set(&c.values, name, append(c.values[name], raw))
}

func (c *Context) setFlag(name string) {
	mak.Set(&c.flags, name, true)
}
