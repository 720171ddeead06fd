// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

// findByHandle resolves a Handle, as previously returned by Request,
// Resize or Reallocate, to its current table index. The table is a
// handful to low tens of entries by design, so a linear scan is the
// whole algorithm; there is no index to maintain.
func (p *Pool) findByHandle(h Handle) (int, bool) {
	for i := range p.fragment {
		if p.fragment[i].classify() == Inactive {
			break
		}
		if p.fragment[i].start == h.start {
			return i, true
		}
	}
	return -1, false
}

// firstInactive returns the index of the first Inactive slot, or -1 if
// the table is full. Inactive slots are a contiguous suffix of the table
// (invariant 2), so this also marks the end of the Active prefix.
func (p *Pool) firstInactive() int {
	for i := range p.fragment {
		if p.fragment[i].classify() == Inactive {
			return i
		}
	}
	return -1
}

// shiftRightAt makes room for a new fragment at index i+1 by moving the
// contiguous run of Active slots after i one position to the right,
// consuming the first Inactive slot in the table. It reports false,
// without mutating anything, if the table has no Inactive slot to
// consume (the caller must then fall back to not splitting).
//
// On success, p.fragment[i+1] is a stale copy of the old p.fragment[i+1]
// (now also present at i+2) and is ready for the caller to overwrite with
// the new fragment.
func (p *Pool) shiftRightAt(i int) bool {
	j := p.firstInactive()
	if j < 0 {
		return false
	}
	copy(p.fragment[i+2:j+1], p.fragment[i+1:j])
	return true
}

// shiftLeftAt eliminates the fragment at index i by moving every later
// slot (Active and Inactive alike) one position to the left and zeroing
// the now-trailing slot.
func (p *Pool) shiftLeftAt(i int) {
	copy(p.fragment[i:], p.fragment[i+1:])
	p.fragment[len(p.fragment)-1] = fragment{}
}
