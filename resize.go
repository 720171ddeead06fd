// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

// Resize changes the size of an Allocated fragment in place, without
// moving any bytes: shrinking returns the excess to the pool (silently
// keeping it if the table has no free slot to record it in), and growing
// extends into an immediately following Available fragment, taking as
// much of it as is available — which may be less than requested, or none
// at all if the follower is Allocated or absent. Use Reallocate when the
// fragment must be free to move.
//
// Resize fails with *ErrINVAL, without changing the pool, only when h
// does not currently identify an Allocated fragment. Otherwise it always
// "succeeds": the caller must inspect the length of the returned region
// to learn the actual outcome of a requested growth.
func (p *Pool) Resize(h Handle, newSize int) ([]byte, error) {
	i, ok := p.findByHandle(h)
	if !ok || p.fragment[i].classify() != Allocated {
		return nil, &ErrINVAL{"fragpool.Resize: handle is not allocated", h.start}
	}

	want := p.roundSize(newSize)
	cur := p.fragment[i].size()

	switch {
	case want < cur:
		p.releaseSuffix(i, cur-want)
	case want > cur && i+1 < len(p.fragment) && p.fragment[i+1].classify() == Available:
		lacking := want - cur
		if p.fragment[i+1].length > lacking {
			p.fragment[i+1].start += lacking
			p.fragment[i+1].length -= lacking
			p.fragment[i].length -= lacking
		} else {
			p.coalesceWithNext(i)
		}
	}

	f := p.fragment[i]
	return p.buf[f.start:f.end()], nil
}
