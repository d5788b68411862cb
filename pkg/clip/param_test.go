// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"errors"
	"reflect"
	"testing"

	"github.com/yeetrun/clip/pkg/codec"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestNewOptionValidation(t *testing.T) {
	mustPanic(t, "no names", func() { NewOption("", "", "", codec.String, ExactlyOne) })
	mustPanic(t, "long short name", func() { NewOption("", "xy", "", codec.String, ExactlyOne) })
	mustPanic(t, "unknown type", func() { NewOption("color", "", "", codec.Type("enum"), ExactlyOne) })
	mustPanic(t, "zero max", func() { NewOption("color", "", "", codec.String, Zero) })

	o := NewOption("color", "c", "output color", codec.String, ExactlyOne)
	if o.Name() != "color" {
		t.Errorf("Name = %q", o.Name())
	}
	short := NewOption("", "x", "", codec.Int, ExactlyOne)
	if short.Name() != "x" {
		t.Errorf("Name = %q", short.Name())
	}
}

func TestOptionDefaults(t *testing.T) {
	o := NewOption("nums", "", "", codec.Int, NewArity(1, 3)).SetDefaults("1", "2")
	if !o.HasDefaults() {
		t.Fatal("HasDefaults = false")
	}
	if got := o.Defaults(); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("Defaults = %v", got)
	}

	mustPanic(t, "double SetDefaults", func() { o.SetDefaults("3") })
	mustPanic(t, "arity-violating defaults", func() {
		NewOption("one", "", "", codec.String, ExactlyOne).SetDefaults("a", "b")
	})
}

func TestOptionValues(t *testing.T) {
	o := NewOption("nums", "", "", codec.Int, NewArity(1, 3)).SetDefaults("9")

	// Defaults alone: not provided, but effective.
	if o.Provided() {
		t.Error("Provided before parse")
	}
	vals, err := o.EffectiveValues()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []string{"9"}) {
		t.Errorf("EffectiveValues = %v", vals)
	}

	if err := o.SetValues([]string{"1", "2"}); err != nil {
		t.Fatal(err)
	}
	if !o.Provided() {
		t.Error("Provided after SetValues")
	}
	vals, err = o.EffectiveValues()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []string{"1", "2"}) {
		t.Errorf("EffectiveValues = %v", vals)
	}

	var insuff *InsufficientValuesError
	if err := o.SetValues(nil); !errors.As(err, &insuff) {
		t.Errorf("SetValues(nil): got %v", err)
	}
	var toomany *TooManyValuesError
	if err := o.SetValues([]string{"1", "2", "3", "4"}); !errors.As(err, &toomany) {
		t.Errorf("SetValues(4 vals): got %v", err)
	}
}

func TestOptionNoValue(t *testing.T) {
	o := NewOption("quiet", "q", "", codec.Bool, ExactlyOne)
	var nv *NoValueError
	if _, err := o.EffectiveValues(); !errors.As(err, &nv) {
		t.Errorf("EffectiveValues: got %v", err)
	}
}

func TestFlag(t *testing.T) {
	mustPanic(t, "no names", func() { NewFlag("", "", "") })

	f := NewFlag("verbose", "v", "")
	if f.Value() {
		t.Error("Value before set")
	}
	f.setValue()
	if !f.Value() {
		t.Error("Value after set")
	}
	f.reset()
	if f.Value() {
		t.Error("Value after reset")
	}
}

func TestNewArgumentArity(t *testing.T) {
	req := NewArgument("name", "", codec.String, true)
	if req.Arity() != ExactlyOne {
		t.Errorf("required arity = %v", req.Arity())
	}
	opt := NewArgument("name", "", codec.String, false)
	if opt.Arity() != ZeroOrOne {
		t.Errorf("optional arity = %v", opt.Arity())
	}

	wide := NewArgument("files", "", codec.String, true).WithArity(OneOrMore)
	if wide.Arity() != OneOrMore {
		t.Errorf("widened arity = %v", wide.Arity())
	}
	mustPanic(t, "required widened to zero", func() {
		NewArgument("name", "", codec.String, true).WithArity(ZeroOrMore)
	})
}

func TestArgumentDefaults(t *testing.T) {
	mustPanic(t, "required with defaults", func() {
		NewArgument("name", "", codec.String, true).SetDefaults("x")
	})

	a := NewArgument("exp", "", codec.Int, false).SetDefaults("2")
	vals, err := a.EffectiveValues()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []string{"2"}) {
		t.Errorf("EffectiveValues = %v", vals)
	}
}

func TestArgumentEffectiveValues(t *testing.T) {
	req := NewArgument("name", "", codec.String, true)
	var missing *RequiredArgumentMissingError
	if _, err := req.EffectiveValues(); !errors.As(err, &missing) {
		t.Errorf("required without values: got %v", err)
	}

	req.appendValue("alice")
	vals, err := req.EffectiveValues()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []string{"alice"}) {
		t.Errorf("EffectiveValues = %v", vals)
	}

	opt := NewArgument("extra", "", codec.String, false)
	var nv *NoValueError
	if _, err := opt.EffectiveValues(); !errors.As(err, &nv) {
		t.Errorf("optional without values: got %v", err)
	}
}
