// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "cogentcore.org/quoteforest/math32/minmax"

// UniformGen returns a uniformly distributed value in the half-open
// interval [lo, hi).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformGen(lo, hi float32, randOpt ...Rand) float32 {
	var rnd Rand
	if len(randOpt) == 0 {
		rnd = NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}
	v := lo + rnd.Float32()*(hi-lo)
	if v >= hi && hi > lo { // float32 rounding can land on hi
		v = lo
	}
	return v
}

// RangeGen returns a uniformly distributed value within the given range.
func RangeGen(mr minmax.F32, randOpt ...Rand) float32 {
	return UniformGen(mr.Min, mr.Max, randOpt...)
}

// IntGen returns a uniformly distributed index in [0, n), or 0 if n <= 0.
func IntGen(n int, randOpt ...Rand) int {
	if n <= 0 {
		return 0
	}
	var rnd Rand
	if len(randOpt) == 0 {
		rnd = NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}
	return rnd.Intn(n)
}
