// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clip parses command-line argument vectors against a declared
// tree of commands, options, flags, and positional arguments.
//
// The library is built around explicit declarations rather than struct
// tags: a program constructs a Command tree, the engine walks the raw
// token stream against it, and the result is a chain of Contexts holding
// typed values accessible by name.
//
//   - Options carry a long and/or short name, a declared value type, and
//     an Arity bounding how many values they consume
//   - Flags are boolean and never consume a value token
//   - Arguments are positional; registration order is positional order
//   - Options declared on an ancestor command are visible and settable
//     from within any subcommand
//
// # Basic usage
//
//	root := clip.New("greet", "Print a greeting").
//	    AddArgument(clip.NewArgument("name", "Who to greet", codec.String, true)).
//	    AddOption(clip.NewOption("count", "c", "Repetitions", codec.Int, clip.ZeroOrOne).SetDefaults("1")).
//	    AddFlag(clip.NewFlag("verbose", "v", "Verbose output")).
//	    SetAction(func(ctx *clip.Context) error {
//	        name, _ := ctx.String("name")
//	        n, _ := ctx.Int("count")
//	        for range n {
//	            fmt.Println("hello,", name)
//	        }
//	        return nil
//	    })
//
//	os.Exit(clip.Main(root, os.Args[1:], help.New()))
//
// # Subcommands
//
// Bare tokens matching a child command name descend into that child; the
// engine creates one Context per node visited, linked to its parent, so
// a subcommand action can read global options transparently:
//
//	root := clip.New("tool", "").
//	    AddFlag(clip.NewFlag("verbose", "v", "Verbose output"))
//	root.AddCommand(clip.New("build", "Build the project").
//	    AddOption(clip.NewOption("jobs", "j", "Parallel jobs", codec.Int, clip.OneOrMore)).
//	    SetAction(runBuild))
//
// # Token syntax
//
// Supported forms: --name value, --name=value, --name v1 v2 (bounded by
// the option's arity), -x value, -x=value, -abc (flag cluster), and a
// bare "--" forcing the rest of the stream positional. A bare -h or
// --help anywhere requests help for the deepest resolved command, as does
// a leading "help" word.
//
// Parsing never stops at the first user error: diagnostics accumulate
// and are reported together at end of run. Value decoding is lazy; raw
// strings are converted by the codec package only when an accessor asks.
package clip
