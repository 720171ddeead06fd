// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

// candidate is one fragment offered to the best-fit comparator: its table
// index and the length to weigh it by. Reallocate substitutes a virtual
// (merged) length for one index, which is why length is carried
// separately from the table rather than read back out of it.
type candidate struct {
	index  int
	length int
}

// bestFitAmong picks, among candidates of at least min bytes, the one
// whose length is as close to max as possible: replace the running
// candidate on an upgrade toward a bigger fragment while still
// undershooting max, or on a downgrade toward the smallest fragment that
// still reaches max. Candidates shorter than min are ignored. Returns
// false if no candidate qualifies.
//
// Informally: the largest fragment below max wins when none reach max;
// the smallest fragment at or above max wins otherwise.
func bestFitAmong(min, max int, cands []candidate) (candidate, bool) {
	var cur candidate
	found := false
	for _, cand := range cands {
		if cand.length < min {
			continue
		}
		switch {
		case !found:
			cur, found = cand, true
		case cand.length > cur.length && cur.length < max:
			cur = cand
		case cand.length < cur.length && cand.length >= max:
			cur = cand
		}
	}
	return cur, found
}

// availableCandidates lists every Available fragment in the table as
// best-fit candidates, in table order.
func (p *Pool) availableCandidates() []candidate {
	cands := make([]candidate, 0, len(p.fragment))
	for i, f := range p.fragment {
		if f.classify() == Available {
			cands = append(cands, candidate{i, f.length})
		}
	}
	return cands
}

// bestFit scans the table once and returns the best Available fragment
// satisfying min and max, or false if none does.
func (p *Pool) bestFit(min, max int) (candidate, bool) {
	return bestFitAmong(min, max, p.availableCandidates())
}
