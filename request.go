// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

// Request allocates a fragment of at least min and at most max bytes
// from the pool, rounding both up to the pool's alignment (MaxSize is
// passed through unrounded and disables the upper clamp). It returns a
// Handle identifying the new fragment together with a []byte view onto
// it; the view may be larger than max if splitting off the remainder
// would have required a table slot the pool does not have free — that is
// never an error, only ever observable via len(region).
//
// Request fails, leaving the pool unchanged, when min <= 0, min > max, or
// no Available fragment of at least min bytes exists.
func (p *Pool) Request(min, max int) (Handle, []byte, error) {
	if min <= 0 || min > max {
		return Handle{}, nil, &ErrINVAL{"fragpool.Request: invalid min/max", [2]int{min, max}}
	}
	rmin := p.roundSize(min)
	rmax := p.roundSize(max)

	bf, ok := p.bestFit(rmin, rmax)
	if !ok {
		return Handle{}, nil, ErrNoFragment
	}

	i := bf.index
	p.fragment[i].length = -p.fragment[i].length
	if excess := p.fragment[i].size() - rmax; excess > 0 {
		p.releaseSuffix(i, excess)
	}

	f := p.fragment[i]
	return Handle{f.start}, p.buf[f.start:f.end()], nil
}
