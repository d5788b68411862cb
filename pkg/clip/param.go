// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"fmt"
	"slices"

	"github.com/yeetrun/clip/pkg/codec"
)

// Option is a named, value-bearing parameter with a long and/or short
// name, a declared value type, and an arity bounding how many values it
// consumes. Declarations are built before parsing; malformed declarations
// are programmer errors and panic at construction.
type Option struct {
	Long        string
	Short       string // single character, "" if none
	Description string
	Type        codec.Type

	arity       Arity
	defaults    []string
	hasDefaults bool
	values      []string
	hasValues   bool
}

// NewOption declares an option. At least one of long and short must be
// set, and short must be a single character. An option always consumes
// values, so ar.Max must be at least 1.
func NewOption(long, short, desc string, typ codec.Type, ar Arity) *Option {
	validateNames("option", long, short)
	if !codec.Known(typ) {
		panic(fmt.Sprintf("clip: option %s: unknown type %q", paramName(long, short), typ))
	}
	if ar.Max < 1 {
		panic(fmt.Sprintf("clip: option %s: arity max must be >= 1", paramName(long, short)))
	}
	return &Option{Long: long, Short: short, Description: desc, Type: typ, arity: ar}
}

// Name returns the canonical name: the long name, else the short one.
func (o *Option) Name() string {
	return paramName(o.Long, o.Short)
}

// Arity returns the option's arity.
func (o *Option) Arity() Arity {
	return o.arity
}

// SetDefaults records the option's default value list. Calling it twice,
// or with a count violating the arity, panics.
func (o *Option) SetDefaults(values ...string) *Option {
	if o.hasDefaults {
		panic(fmt.Sprintf("clip: option %s: defaults already set", o.Name()))
	}
	if !o.arity.Satisfied(len(values)) {
		panic(fmt.Sprintf("clip: option %s: %d default(s) violate arity %s", o.Name(), len(values), o.arity))
	}
	o.defaults = slices.Clone(values)
	o.hasDefaults = true
	return o
}

// HasDefaults reports whether a default value list was declared.
func (o *Option) HasDefaults() bool {
	return o.hasDefaults
}

// Defaults returns a copy of the declared default value list.
func (o *Option) Defaults() []string {
	return slices.Clone(o.defaults)
}

// SetValues records explicitly parsed values. Storage is distinct from
// defaults so "was it provided" remains observable.
func (o *Option) SetValues(values []string) error {
	if n := len(values); !o.arity.Satisfied(n) {
		if n < o.arity.Min {
			return &InsufficientValuesError{Name: o.Name(), Min: o.arity.Min, Got: n}
		}
		return &TooManyValuesError{Name: o.Name(), Max: o.arity.Max, Got: n}
	}
	o.setValues(values)
	return nil
}

func (o *Option) setValues(values []string) {
	o.values = slices.Clone(values)
	o.hasValues = true
}

// Provided reports whether the option was explicitly set during parsing.
func (o *Option) Provided() bool {
	return o.hasValues
}

// EffectiveValues returns the parsed values if present, else the
// defaults, else a NoValueError.
func (o *Option) EffectiveValues() ([]string, error) {
	if o.hasValues {
		return slices.Clone(o.values), nil
	}
	if o.hasDefaults {
		return slices.Clone(o.defaults), nil
	}
	return nil, &NoValueError{Name: o.Name()}
}

// Satisfied reports whether a count of n values meets the arity.
func (o *Option) Satisfied(n int) bool {
	return o.arity.Satisfied(n)
}

func (o *Option) reset() {
	o.values = nil
	o.hasValues = false
}

// Flag is a boolean parameter: its presence toggles the value and it
// never consumes a value token.
type Flag struct {
	Long        string
	Short       string
	Description string

	value bool
	set   bool
}

// NewFlag declares a flag. At least one of long and short must be set,
// and short must be a single character.
func NewFlag(long, short, desc string) *Flag {
	validateNames("flag", long, short)
	return &Flag{Long: long, Short: short, Description: desc}
}

// Name returns the canonical name: the long name, else the short one.
func (f *Flag) Name() string {
	return paramName(f.Long, f.Short)
}

// Value reports whether the flag was set during parsing.
func (f *Flag) Value() bool {
	return f.value
}

func (f *Flag) setValue() {
	f.value = true
	f.set = true
}

func (f *Flag) reset() {
	f.value = false
	f.set = false
}

// Argument is a positional, value-bearing parameter whose identity is its
// registration order on a command. A required argument's arity is
// ExactlyOne unless widened with WithArity.
type Argument struct {
	Name        string
	Description string
	Type        codec.Type
	Required    bool

	arity       Arity
	defaults    []string
	hasDefaults bool
	values      []string
	hasValues   bool
}

// NewArgument declares a positional argument.
func NewArgument(name, desc string, typ codec.Type, required bool) *Argument {
	if name == "" {
		panic("clip: argument must have a name")
	}
	if !codec.Known(typ) {
		panic(fmt.Sprintf("clip: argument %s: unknown type %q", name, typ))
	}
	ar := ZeroOrOne
	if required {
		ar = ExactlyOne
	}
	return &Argument{Name: name, Description: desc, Type: typ, Required: required, arity: ar}
}

// WithArity widens or narrows the argument's arity. Widening a required
// argument to permit zero occurrences is a programmer error.
func (a *Argument) WithArity(ar Arity) *Argument {
	if a.Required && ar.Min == 0 {
		panic(fmt.Sprintf("clip: required argument %s cannot permit zero values", a.Name))
	}
	a.arity = ar
	return a
}

// Arity returns the argument's arity.
func (a *Argument) Arity() Arity {
	return a.arity
}

// SetDefaults records the argument's default value list. A required
// argument cannot carry a default.
func (a *Argument) SetDefaults(values ...string) *Argument {
	if a.Required {
		panic(fmt.Sprintf("clip: required argument %s cannot have defaults", a.Name))
	}
	if a.hasDefaults {
		panic(fmt.Sprintf("clip: argument %s: defaults already set", a.Name))
	}
	if !a.arity.Satisfied(len(values)) {
		panic(fmt.Sprintf("clip: argument %s: %d default(s) violate arity %s", a.Name, len(values), a.arity))
	}
	a.defaults = slices.Clone(values)
	a.hasDefaults = true
	return a
}

// HasDefaults reports whether a default value list was declared.
func (a *Argument) HasDefaults() bool {
	return a.hasDefaults
}

// Defaults returns a copy of the declared default value list.
func (a *Argument) Defaults() []string {
	return slices.Clone(a.defaults)
}

// SetValues records explicitly parsed values.
func (a *Argument) SetValues(values []string) error {
	if n := len(values); !a.arity.Satisfied(n) {
		if n < a.arity.Min {
			return &InsufficientValuesError{Name: a.Name, Min: a.arity.Min, Got: n}
		}
		return &TooManyValuesError{Name: a.Name, Max: a.arity.Max, Got: n}
	}
	a.values = slices.Clone(values)
	a.hasValues = true
	return nil
}

func (a *Argument) appendValue(raw string) {
	a.values = append(a.values, raw)
	a.hasValues = true
}

// Provided reports whether the argument received values during parsing.
func (a *Argument) Provided() bool {
	return a.hasValues
}

// EffectiveValues returns the parsed values if present, else the
// defaults. A required argument with neither reports
// RequiredArgumentMissingError; an optional one reports NoValueError.
func (a *Argument) EffectiveValues() ([]string, error) {
	if a.hasValues {
		return slices.Clone(a.values), nil
	}
	if a.hasDefaults {
		return slices.Clone(a.defaults), nil
	}
	if a.Required {
		return nil, &RequiredArgumentMissingError{Name: a.Name}
	}
	return nil, &NoValueError{Name: a.Name}
}

// Satisfied reports whether a count of n values meets the arity.
func (a *Argument) Satisfied(n int) bool {
	return a.arity.Satisfied(n)
}

func (a *Argument) reset() {
	a.values = nil
	a.hasValues = false
}

func validateNames(kind, long, short string) {
	if long == "" && short == "" {
		panic(fmt.Sprintf("clip: %s must have a long or short name", kind))
	}
	if len(short) > 1 {
		panic(fmt.Sprintf("clip: %s short name %q must be a single character", kind, short))
	}
}

func paramName(long, short string) string {
	if long != "" {
		return long
	}
	return short
}
