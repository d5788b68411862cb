// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treespec builds clip command trees from declarative TOML or
// YAML manifests. Actions cannot be declared in a manifest; attach them
// after loading with Command.Find.
package treespec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/clip/pkg/clip"
	"github.com/yeetrun/clip/pkg/codec"
	"gopkg.in/yaml.v3"
)

// Format selects a manifest encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Manifest is the top-level document: a single root command.
type Manifest struct {
	Command CommandSpec `toml:"command" yaml:"command"`
}

// CommandSpec describes one command node and its children.
type CommandSpec struct {
	Name        string         `toml:"name" yaml:"name"`
	Description string         `toml:"description" yaml:"description"`
	Usage       string         `toml:"usage" yaml:"usage"`
	Aliases     []string       `toml:"aliases" yaml:"aliases"`
	Examples    []string       `toml:"examples" yaml:"examples"`
	Hidden      bool           `toml:"hidden" yaml:"hidden"`
	Options     []OptionSpec   `toml:"options" yaml:"options"`
	Flags       []FlagSpec     `toml:"flags" yaml:"flags"`
	Arguments   []ArgumentSpec `toml:"arguments" yaml:"arguments"`
	Commands    []CommandSpec  `toml:"commands" yaml:"commands"`
}

// OptionSpec describes a value-bearing option. Min and Max default to 1
// when omitted; a Max of -1 means unbounded.
type OptionSpec struct {
	Long        string   `toml:"long" yaml:"long"`
	Short       string   `toml:"short" yaml:"short"`
	Description string   `toml:"description" yaml:"description"`
	Type        string   `toml:"type" yaml:"type"`
	Min         *int     `toml:"min" yaml:"min"`
	Max         *int     `toml:"max" yaml:"max"`
	Defaults    []string `toml:"defaults" yaml:"defaults"`
}

// FlagSpec describes a boolean flag.
type FlagSpec struct {
	Long        string `toml:"long" yaml:"long"`
	Short       string `toml:"short" yaml:"short"`
	Description string `toml:"description" yaml:"description"`
}

// ArgumentSpec describes a positional argument.
type ArgumentSpec struct {
	Name        string   `toml:"name" yaml:"name"`
	Description string   `toml:"description" yaml:"description"`
	Type        string   `toml:"type" yaml:"type"`
	Required    bool     `toml:"required" yaml:"required"`
	Min         *int     `toml:"min" yaml:"min"`
	Max         *int     `toml:"max" yaml:"max"`
	Defaults    []string `toml:"defaults" yaml:"defaults"`
}

// Load decodes a manifest and builds the command tree it describes.
// Manifests are user input, so malformed declarations are reported as
// errors rather than panics.
func Load(data []byte, format Format) (*clip.Command, error) {
	var m Manifest
	switch format {
	case TOML:
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("treespec: decode toml: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("treespec: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("treespec: unknown format %q", format)
	}
	return Build(m)
}

// LoadFile loads a manifest from path, picking the format from the file
// extension (.toml, .yaml, .yml).
func LoadFile(path string) (*clip.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treespec: read %s: %w", path, err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		return Load(data, TOML)
	case ".yaml", ".yml":
		return Load(data, YAML)
	default:
		return nil, fmt.Errorf("treespec: %s: unsupported extension %q", path, ext)
	}
}

// Build constructs the command tree from an already-decoded manifest.
func Build(m Manifest) (*clip.Command, error) {
	return buildCommand(m.Command, nil)
}

func buildCommand(spec CommandSpec, path []string) (cmd *clip.Command, err error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("treespec: command under %q has no name", strings.Join(path, " "))
	}
	path = append(path, spec.Name)
	where := strings.Join(path, " ")

	// The clip constructors treat malformed declarations as programmer
	// errors and panic. A manifest is data, so recover those into errors.
	defer func() {
		if r := recover(); r != nil {
			cmd, err = nil, fmt.Errorf("treespec: command %q: %v", where, r)
		}
	}()

	cmd = clip.New(spec.Name, spec.Description)
	cmd.Usage = spec.Usage
	cmd.Aliases = spec.Aliases
	cmd.Examples = spec.Examples
	cmd.Hidden = spec.Hidden

	for _, o := range spec.Options {
		ar, err := specArity(o.Min, o.Max, 1, 1)
		if err != nil {
			return nil, fmt.Errorf("treespec: command %q: option %s: %w", where, o.Long+o.Short, err)
		}
		opt := clip.NewOption(o.Long, o.Short, o.Description, optionType(o.Type), ar)
		if len(o.Defaults) > 0 {
			opt.SetDefaults(o.Defaults...)
		}
		cmd.AddOption(opt)
	}
	for _, f := range spec.Flags {
		cmd.AddFlag(clip.NewFlag(f.Long, f.Short, f.Description))
	}
	for _, a := range spec.Arguments {
		arg := clip.NewArgument(a.Name, a.Description, optionType(a.Type), a.Required)
		if a.Min != nil || a.Max != nil {
			defMin, defMax := 0, 1
			if a.Required {
				defMin, defMax = 1, 1
			}
			ar, err := specArity(a.Min, a.Max, defMin, defMax)
			if err != nil {
				return nil, fmt.Errorf("treespec: command %q: argument %s: %w", where, a.Name, err)
			}
			arg.WithArity(ar)
		}
		if len(a.Defaults) > 0 {
			arg.SetDefaults(a.Defaults...)
		}
		cmd.AddArgument(arg)
	}
	for _, sub := range spec.Commands {
		child, err := buildCommand(sub, path)
		if err != nil {
			return nil, err
		}
		cmd.AddCommand(child)
	}
	return cmd, nil
}

func optionType(s string) codec.Type {
	if s == "" {
		return codec.String
	}
	return codec.Type(s)
}

func specArity(min, max *int, defMin, defMax int) (clip.Arity, error) {
	lo, hi := defMin, defMax
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	if hi == -1 {
		hi = clip.ArityMax
	}
	if lo < 0 || hi < lo {
		return clip.Arity{}, fmt.Errorf("invalid arity [%d,%d]", lo, hi)
	}
	return clip.Arity{Min: lo, Max: hi}, nil
}
