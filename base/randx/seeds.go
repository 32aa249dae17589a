// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// Seeds is a set of random seeds, typically used one per worker
// so that parallel runs are reproducible.
type Seeds []int64

// Init allocates given number of seeds and initializes them to
// sequential numbers base+1..base+n
func (rs *Seeds) Init(n int, base int64) {
	*rs = make([]int64, n)
	for i := range *rs {
		(*rs)[i] = base + int64(i) + 1
	}
}

// Rand returns a new separate source seeded with the seed at idx.
func (rs Seeds) Rand(idx int) *SysRand {
	return NewSysRand(rs[idx])
}
