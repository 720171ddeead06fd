// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

import "github.com/cznic/mathutil"

// alignUp rounds v up to the next multiple of a, which must be a nonzero
// power of two. alignUp(v, a) == v when v is already a multiple of a.
func alignUp(v, a int) int {
	return (v + a - 1) &^ (a - 1)
}

// alignDown rounds v down to the previous multiple of a, which must be a
// nonzero power of two.
func alignDown(v, a int) int {
	return v &^ (a - 1)
}

// roundSize rounds a caller-supplied min/max size up to the pool's
// alignment, with MaxSize passed through unrounded (it is the "largest
// available fragment" sentinel and must never clamp anything).
func (p *Pool) roundSize(size int) int {
	if size >= MaxSize {
		return MaxSize
	}
	return alignUp(mathutil.Max(size, 0), p.alignment)
}
