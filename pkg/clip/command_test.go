// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"reflect"
	"testing"

	"github.com/yeetrun/clip/pkg/codec"
)

func TestCommandRegistrationPanics(t *testing.T) {
	mustPanic(t, "empty name", func() { New("", "") })

	c := New("tool", "")
	c.AddOption(NewOption("color", "c", "", codec.String, ExactlyOne))
	mustPanic(t, "duplicate long across kinds", func() {
		c.AddFlag(NewFlag("color", "", ""))
	})
	mustPanic(t, "duplicate short", func() {
		c.AddOption(NewOption("count", "c", "", codec.Int, ExactlyOne))
	})

	c.AddArgument(NewArgument("src", "", codec.String, false))
	mustPanic(t, "required after optional", func() {
		c.AddArgument(NewArgument("dst", "", codec.String, true))
	})
	mustPanic(t, "duplicate argument", func() {
		c.AddArgument(NewArgument("src", "", codec.String, false))
	})

	sub := New("run", "")
	sub.Aliases = []string{"r"}
	c.AddCommand(sub)
	mustPanic(t, "duplicate subcommand name", func() {
		c.AddCommand(New("run", ""))
	})
	mustPanic(t, "subcommand name colliding with alias", func() {
		c.AddCommand(New("r", ""))
	})
}

func TestCommandPath(t *testing.T) {
	root := New("tool", "")
	mid := New("remote", "")
	leaf := New("add", "")
	root.AddCommand(mid)
	mid.AddCommand(leaf)

	if got := leaf.Path(); !reflect.DeepEqual(got, []string{"tool", "remote", "add"}) {
		t.Errorf("Path = %v", got)
	}
	if leaf.Parent() != mid || mid.Parent() != root || root.Parent() != nil {
		t.Error("parent chain wrong")
	}
}

func TestCommandFind(t *testing.T) {
	root := New("tool", "")
	mid := New("remote", "")
	mid.Aliases = []string{"rem"}
	leaf := New("add", "")
	root.AddCommand(mid)
	mid.AddCommand(leaf)

	if root.Find("remote", "add") != leaf {
		t.Error("Find(remote, add) failed")
	}
	if root.Find("rem") != mid {
		t.Error("Find by alias failed")
	}
	if root.Find("add") != nil {
		t.Error("Find skipped a level")
	}
	if root.Find() != root {
		t.Error("Find() should return the receiver")
	}
}

func TestFindOptionRecursesToParents(t *testing.T) {
	root := New("tool", "")
	global := NewOption("config", "", "", codec.String, ExactlyOne)
	root.AddOption(global)
	root.AddFlag(NewFlag("verbose", "v", ""))

	sub := New("run", "")
	root.AddCommand(sub)

	if sub.findOption("config") != global {
		t.Error("findOption did not recurse to parent")
	}
	if sub.findFlagShort("v") == nil {
		t.Error("findFlagShort did not recurse to parent")
	}
	if root.findOption("nope") != nil {
		t.Error("findOption matched a missing name")
	}

	// Sibling subtrees stay invisible to each other.
	other := New("other", "")
	other.AddOption(NewOption("only", "", "", codec.String, ExactlyOne))
	root.AddCommand(other)
	if sub.findOption("only") != nil {
		t.Error("findOption leaked across siblings")
	}
}

func TestCommandReset(t *testing.T) {
	root := New("tool", "")
	o := NewOption("n", "", "", codec.Int, ExactlyOne)
	root.AddOption(o)
	sub := New("run", "")
	f := NewFlag("verbose", "v", "")
	sub.AddFlag(f)
	root.AddCommand(sub)

	o.setValues([]string{"1"})
	f.setValue()
	root.reset()
	if o.Provided() || f.Value() {
		t.Error("reset did not clear the subtree")
	}
}
