// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

// coalesceWithNext folds the Available fragment at index i+1 into the
// fragment at index i, preserving index i's state (Allocated or
// Available), then removes the now-duplicate slot. The caller must have
// already verified that p.fragment[i+1] classifies as Available.
func (p *Pool) coalesceWithNext(i int) {
	f := &p.fragment[i]
	size := f.size() + p.fragment[i+1].size()
	if f.classify() == Allocated {
		f.length = -size
	} else {
		f.length = size
	}
	p.shiftLeftAt(i + 1)
}

// releaseSuffix returns excess bytes from the tail of the Allocated
// fragment at index i back to the pool. It reports whether the release
// took effect; on false the table had no Inactive
// slot anywhere after i and f is left untouched — the caller simply
// carries a slightly larger allocation than it asked for, which is never
// a fatal condition.
func (p *Pool) releaseSuffix(i, excess int) bool {
	if excess <= 0 {
		return true
	}
	f := &p.fragment[i]
	newStart := f.start + (f.size() - excess)
	next := i + 1
	if next >= len(p.fragment) {
		return false
	}
	switch p.fragment[next].classify() {
	case Inactive:
		p.fragment[next] = fragment{start: newStart, length: excess}
	case Available:
		p.fragment[next].start -= excess
		p.fragment[next].length += excess
	case Allocated:
		if p.firstInactive() < 0 {
			return false
		}
		if !p.shiftRightAt(i) {
			return false
		}
		p.fragment[next] = fragment{start: newStart, length: excess}
	}
	if f.classify() == Allocated {
		f.length += excess
	} else {
		f.length -= excess
	}
	return true
}
