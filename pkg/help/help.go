// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package help renders help text for clip command trees. The parsing
// core decides when help is shown and for which command; this package
// only formats.
package help

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/yeetrun/clip/pkg/clip"
	"golang.org/x/term"
)

// Renderer formats a command's help text. It implements clip.Renderer.
type Renderer struct {
	// Color enables ANSI styling of section headers.
	Color bool
}

// New returns a renderer with color enabled when stdout is a terminal
// and the environment does not object.
func New() Renderer {
	return Renderer{Color: colorEnabled()}
}

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (r Renderer) header(s string) string {
	if !r.Color {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}

// Render produces the full help text for cmd: description, usage,
// arguments, options, flags, visible subcommands, and examples.
func (r Renderer) Render(cmd *clip.Command) string {
	var b strings.Builder

	path := strings.Join(cmd.Path(), " ")
	if cmd.Description != "" {
		b.WriteString(path)
		b.WriteString(" - ")
		b.WriteString(cmd.Description)
		b.WriteString("\n\n")
	}
	if len(cmd.Aliases) > 0 {
		b.WriteString("ALIASES:\n")
		b.WriteString(fmt.Sprintf("    %s\n\n", strings.Join(cmd.Aliases, ", ")))
	}

	b.WriteString(r.header("USAGE:") + "\n")
	b.WriteString("    " + usageLine(cmd, path) + "\n\n")

	if args := cmd.Arguments(); len(args) > 0 {
		b.WriteString(r.header("ARGUMENTS:") + "\n")
		for _, a := range args {
			desc := a.Description
			if a.HasDefaults() {
				desc = appendDefault(desc, a.Defaults())
			}
			writeRow(&b, strings.ToUpper(a.Name), desc)
		}
		b.WriteString("\n")
	}

	opts := cmd.Options()
	flags := cmd.Flags()
	if len(opts) > 0 || len(flags) > 0 {
		b.WriteString(r.header("OPTIONS:") + "\n")
		for _, f := range flags {
			writeRow(&b, flagLabel(f.Long, f.Short), f.Description)
		}
		for _, o := range opts {
			desc := o.Description
			if o.HasDefaults() {
				desc = appendDefault(desc, o.Defaults())
			}
			writeRow(&b, flagLabel(o.Long, o.Short)+" <"+string(o.Type)+">", desc)
		}
		writeRow(&b, "-h, --help", "Show this help message")
		b.WriteString("\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		b.WriteString(r.header("COMMANDS:") + "\n")
		for _, sub := range subs {
			b.WriteString(fmt.Sprintf("    %-12s %s\n", sub.Name, describeWithAliases(sub.Description, sub.Aliases)))
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Run '%s COMMAND --help' for more information on a command.\n", path))
	}

	if len(cmd.Examples) > 0 {
		b.WriteString(r.header("EXAMPLES:") + "\n")
		for _, example := range cmd.Examples {
			b.WriteString(fmt.Sprintf("    %s\n", example))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func usageLine(cmd *clip.Command, path string) string {
	if cmd.Usage != "" {
		return path + " " + cmd.Usage
	}
	usage := path
	if len(cmd.Options()) > 0 || len(cmd.Flags()) > 0 {
		usage += " [OPTIONS]"
	}
	if len(cmd.Commands()) > 0 {
		usage += " COMMAND"
	}
	for _, a := range cmd.Arguments() {
		name := strings.ToUpper(a.Name)
		if a.Arity().Max > 1 {
			name += "..."
		}
		if a.Required {
			usage += fmt.Sprintf(" <%s>", name)
		} else {
			usage += fmt.Sprintf(" [%s]", name)
		}
	}
	return usage
}

func flagLabel(long, short string) string {
	switch {
	case long != "" && short != "":
		return fmt.Sprintf("-%s, --%s", short, long)
	case long != "":
		return "--" + long
	default:
		return "-" + short
	}
}

func writeRow(b *strings.Builder, label, desc string) {
	if desc == "" {
		b.WriteString("    " + label + "\n")
		return
	}
	b.WriteString(fmt.Sprintf("    %-24s %s\n", label, desc))
}

func appendDefault(desc string, defaults []string) string {
	suffix := fmt.Sprintf("(default: %s)", strings.Join(defaults, ", "))
	if desc == "" {
		return suffix
	}
	return desc + " " + suffix
}

func visibleCommands(cmd *clip.Command) []*clip.Command {
	var subs []*clip.Command
	for _, sub := range cmd.Commands() {
		if !sub.Hidden {
			subs = append(subs, sub)
		}
	}
	slices.SortFunc(subs, func(a, b *clip.Command) int {
		return strings.Compare(a.Name, b.Name)
	})
	return subs
}

func describeWithAliases(desc string, aliases []string) string {
	if len(aliases) == 0 {
		return desc
	}
	var suffix string
	if len(aliases) == 1 {
		suffix = fmt.Sprintf("(alias: %s)", aliases[0])
	} else {
		suffix = fmt.Sprintf("(aliases: %s)", strings.Join(aliases, ", "))
	}
	if desc == "" {
		return suffix
	}
	return desc + " " + suffix
}
