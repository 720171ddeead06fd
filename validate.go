// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

// Validate scans the fragment table once and reports the first broken
// invariant it finds as an *ErrValidation, or nil if the pool is
// internally consistent. It checks every invariant of the fragment
// partition: Active fragments, in table order, exactly cover the
// alignment-adjusted buffer with no gaps or overlaps; every start and
// size is aligned; no two adjacent Active fragments are both Available;
// and Inactive slots form a contiguous suffix of the table.
//
// Validate never mutates the pool. It exists for tests and diagnostics —
// none of the other operations call it, and a broken invariant can only
// be the result of a bug in this package or of a caller corrupting the
// buffer or table behind the pool's back.
func (p *Pool) Validate() error {
	if len(p.fragment) <= 0 {
		return &ErrValidation{Code: ErrFragmentCountInvalid, Index: -1}
	}
	if p.alignment <= 0 || p.alignment&(p.alignment-1) != 0 {
		return &ErrValidation{Code: ErrAlignmentInvalid, Index: -1}
	}

	begin := alignUp(p.base, p.alignment) - p.base
	end := alignDown(p.base+len(p.buf), p.alignment) - p.base
	if begin >= end {
		return &ErrValidation{Code: ErrBufferInvalid, Index: -1}
	}

	bp := begin
	size := 0
	i := 0
	for ; i < len(p.fragment); i++ {
		f := p.fragment[i]
		if f.classify() == Inactive {
			break
		}
		if f.start != bp {
			return &ErrValidation{ErrFragmentWrongStart, i, f.start, f.length}
		}
		if (p.base+f.start)%p.alignment != 0 || f.size()%p.alignment != 0 {
			return &ErrValidation{ErrFragmentMisaligned, i, f.start, f.length}
		}
		if i > 0 && p.fragment[i-1].classify() == Available && f.classify() == Available {
			return &ErrValidation{ErrFragmentUnmerged, i, f.start, f.length}
		}
		size += f.size()
		bp = f.end()
	}
	for ; i < len(p.fragment); i++ {
		if p.fragment[i].classify() != Inactive {
			return &ErrValidation{ErrFragmentUsedPastEnd, i, p.fragment[i].start, p.fragment[i].length}
		}
	}
	if size != end-begin {
		return &ErrValidation{Code: ErrFragmentSizeInconsistent, Index: -1}
	}
	return nil
}
