// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"fmt"
	"math"
)

// ArityMax is the unbounded sentinel for Arity.Max. It is fixed at
// MaxInt32 so arity bounds are identical on 32- and 64-bit builds; no
// behavior depends on the numeric value beyond being unreachable by real
// argument counts.
const ArityMax = math.MaxInt32

// Arity is the closed interval [Min,Max] of values a parameter accepts.
type Arity struct {
	Min int
	Max int
}

// Named arities.
var (
	Zero       = Arity{0, 0}
	ZeroOrOne  = Arity{0, 1}
	ZeroOrMore = Arity{0, ArityMax}
	ExactlyOne = Arity{1, 1}
	OneOrMore  = Arity{1, ArityMax}
	Many       = Arity{ArityMax, ArityMax}
)

// NewArity returns the arity [min,max]. A malformed interval is a
// programmer error and panics at construction.
func NewArity(min, max int) Arity {
	if min < 0 || max < 0 {
		panic(fmt.Sprintf("clip: negative arity bound [%d,%d]", min, max))
	}
	if min > max {
		panic(fmt.Sprintf("clip: arity min %d > max %d", min, max))
	}
	return Arity{Min: min, Max: max}
}

// Satisfied reports whether a count of n values meets the arity.
func (a Arity) Satisfied(n int) bool {
	return n >= a.Min && n <= a.Max
}

func (a Arity) String() string {
	if a.Max == ArityMax {
		return fmt.Sprintf("%d..*", a.Min)
	}
	return fmt.Sprintf("%d..%d", a.Min, a.Max)
}
