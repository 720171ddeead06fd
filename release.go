// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

// Release returns a fragment previously obtained from Request, Resize or
// Reallocate to the pool, merging it with an Available predecessor and/or
// successor if either is adjacent. h is invalid for further use once
// Release succeeds.
//
// Release fails with *ErrINVAL, without changing the pool, if h does not
// currently identify an Allocated fragment.
func (p *Pool) Release(h Handle) error {
	i, ok := p.findByHandle(h)
	if !ok || p.fragment[i].classify() != Allocated {
		return &ErrINVAL{"fragpool.Release: handle is not allocated", h.start}
	}

	p.fragment[i].length = -p.fragment[i].length

	cursor := i
	if cursor > 0 && p.fragment[cursor-1].classify() == Available {
		cursor--
		p.coalesceWithNext(cursor)
	}
	if cursor+1 < len(p.fragment) && p.fragment[cursor+1].classify() == Available {
		p.coalesceWithNext(cursor)
	}
	return nil
}
