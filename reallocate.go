// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

import "github.com/cznic/mathutil"

// Reallocate places an Allocated fragment at the best available location
// for the given min/max, moving it if necessary. It guarantees that the
// first min(old size, min) bytes — min here taken before alignment
// rounding — survive at the returned start, or that it fails leaving the
// pool completely unchanged.
//
// The placement search treats the fragment together with any immediately
// Available predecessor and successor as one "virtual" free region: when
// the best-fit winner for that virtual region turns out to be the
// fragment's own Available predecessor, Reallocate can relocate in place
// by moving at most min(old size, min) bytes left by an overlap-tolerant
// copy, rather than requiring external scratch space. In every other case
// it behaves like Request followed by a copy and a Release of the old
// fragment.
//
// Reallocate fails with ErrNoFragment, leaving the pool unchanged, if no
// placement satisfies min. It fails with *ErrINVAL if min/max are invalid
// or h does not identify an Allocated fragment.
func (p *Pool) Reallocate(h Handle, min, max int) (Handle, []byte, error) {
	if min <= 0 || min > max {
		return Handle{}, nil, &ErrINVAL{"fragpool.Reallocate: invalid min/max", [2]int{min, max}}
	}
	fi, ok := p.findByHandle(h)
	if !ok || p.fragment[fi].classify() != Allocated {
		return Handle{}, nil, &ErrINVAL{"fragpool.Reallocate: handle is not allocated", h.start}
	}

	rmin := p.roundSize(min)
	rmax := p.roundSize(max)

	hasPrev := fi > 0 && p.fragment[fi-1].classify() == Available
	hasNext := fi+1 < len(p.fragment) && p.fragment[fi+1].classify() == Available

	vs := fi
	vlen := p.fragment[fi].size()
	if hasPrev {
		vs = fi - 1
		vlen += p.fragment[fi-1].size()
	}
	if hasNext {
		vlen += p.fragment[fi+1].size()
	}

	absorbed := make(map[int]bool, 3)
	absorbed[fi] = true
	if hasPrev {
		absorbed[fi-1] = true
	}
	if hasNext {
		absorbed[fi+1] = true
	}

	cands := make([]candidate, 0, len(p.fragment))
	for idx, fr := range p.fragment {
		switch {
		case idx == vs:
			cands = append(cands, candidate{vs, vlen})
		case absorbed[idx]:
			// already represented by vs
		case fr.classify() == Available:
			cands = append(cands, candidate{idx, fr.length})
		}
	}

	bf, ok := bestFitAmong(rmin, rmax, cands)
	if !ok {
		return Handle{}, nil, ErrNoFragment
	}

	copyLen := mathutil.Min(p.fragment[fi].size(), min)
	oldStart := p.fragment[fi].start

	switch {
	case bf.index == fi:
		region, err := p.Resize(h, max)
		if err != nil {
			return Handle{}, nil, err
		}
		return h, region, nil

	case bf.index == vs && vs < fi:
		if hasNext {
			p.coalesceWithNext(fi)
		}
		vsStart := p.fragment[vs].start
		copy(p.buf[vsStart:vsStart+copyLen], p.buf[oldStart:oldStart+copyLen])

		combined := p.fragment[vs].size() + p.fragment[fi].size()
		newLen := mathutil.Min(combined, rmax)
		p.fragment[vs] = fragment{start: vsStart, length: -newLen}

		if newLen == combined {
			p.shiftLeftAt(fi)
		} else {
			p.fragment[fi] = fragment{start: vsStart + newLen, length: combined - newLen}
		}
		return Handle{vsStart}, p.buf[vsStart : vsStart+newLen], nil

	default:
		p.fragment[bf.index].length = -p.fragment[bf.index].length
		if excess := p.fragment[bf.index].size() - rmax; excess > 0 {
			p.releaseSuffix(bf.index, excess)
		}
		newFrag := p.fragment[bf.index]
		copy(p.buf[newFrag.start:newFrag.start+copyLen], p.buf[oldStart:oldStart+copyLen])
		if err := p.Release(h); err != nil {
			panic(err) // h was verified Allocated above; Release cannot fail here
		}
		return Handle{newFrag.start}, p.buf[newFrag.start:newFrag.end()], nil
	}
}
