// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command calc is a demo calculator built on clip. The command tree is
// declared in an embedded TOML manifest and actions are attached after
// loading.
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/yeetrun/clip/pkg/clip"
	"github.com/yeetrun/clip/pkg/help"
	"github.com/yeetrun/clip/pkg/treespec"
	"tailscale.com/util/must"
)

//go:embed calc.toml
var manifest []byte

func main() {
	root := must.Get(treespec.Load(manifest, treespec.TOML))

	root.Find("add").SetAction(func(ctx *clip.Context) error {
		nums := must.Get(ctx.Ints("values"))
		sum := 0
		for _, n := range nums {
			sum += n
		}
		printResult(ctx, sum)
		return nil
	})
	root.Find("mul").SetAction(func(ctx *clip.Context) error {
		nums := must.Get(ctx.Ints("values"))
		product := 1
		for _, n := range nums {
			product *= n
		}
		printResult(ctx, product)
		return nil
	})
	root.Find("pow").SetAction(func(ctx *clip.Context) error {
		base := must.Get(ctx.Int("base"))
		exp := must.Get(ctx.Int("exp"))
		result := 1
		for i := 0; i < exp; i++ {
			result *= base
		}
		printResult(ctx, result)
		return nil
	})

	os.Exit(clip.Main(root, os.Args[1:], help.New()))
}

func printResult(ctx *clip.Context, n int) {
	if ctx.Bool("verbose") {
		fmt.Printf("%s = %d\n", ctx.Command().Name, n)
		return
	}
	fmt.Println(n)
}
