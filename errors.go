// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

import (
	"errors"
	"fmt"
)

// ErrNoFragment is returned by Request and Reallocate when no Available
// fragment (or, for Reallocate, no placement at all) satisfies the
// requested minimum size. It is an ordinary, expected condition — not a
// programming error — and the pool is left unchanged.
var ErrNoFragment = errors.New("fragpool: no fragment satisfies the request")

// ErrINVAL reports a caller-contract violation: a non-positive size, a
// min greater than max, or a Handle that does not currently refer to an
// Allocated fragment of the Pool it was presented to. The pool is left
// unchanged.
type ErrINVAL struct {
	Src string // brief description of what was invalid
	Arg any    // the offending value, for diagnostics
}

func (e *ErrINVAL) Error() string {
	return fmt.Sprintf("%s: %v", e.Src, e.Arg)
}

// ValidationCode enumerates the specific invariant Validate found broken.
// It is meaningful only when paired with an *ErrValidation; a nil error
// from Validate means the pool is consistent.
type ValidationCode int

const (
	// valOK is never returned as an error; Validate returns nil instead.
	valOK ValidationCode = iota

	// ErrBufferInvalid reports that the pool's buffer is too small to
	// contain a single aligned fragment.
	ErrBufferInvalid

	// ErrFragmentCountInvalid reports a non-positive fragment table size.
	ErrFragmentCountInvalid

	// ErrAlignmentInvalid reports a zero or non-power-of-two alignment.
	ErrAlignmentInvalid

	// ErrFragmentMisaligned reports a fragment whose start or size is
	// not a multiple of the pool's alignment.
	ErrFragmentMisaligned

	// ErrFragmentWrongStart reports a fragment that does not begin where
	// the previous Active fragment ended (a gap or overlap in the
	// partition).
	ErrFragmentWrongStart

	// ErrFragmentUnmerged reports two adjacent Active fragments that are
	// both Available; they should have been coalesced.
	ErrFragmentUnmerged

	// ErrFragmentUsedPastEnd reports a non-Inactive fragment occurring
	// after an Inactive one — Inactive slots must form a contiguous
	// suffix of the table.
	ErrFragmentUsedPastEnd

	// ErrFragmentSizeInconsistent reports that the sum of all Active
	// fragment sizes does not equal the alignment-adjusted buffer size.
	ErrFragmentSizeInconsistent
)

func (c ValidationCode) String() string {
	switch c {
	case ErrBufferInvalid:
		return "pool buffer too small for any aligned fragment"
	case ErrFragmentCountInvalid:
		return "fragment table size is not positive"
	case ErrAlignmentInvalid:
		return "alignment is not a nonzero power of two"
	case ErrFragmentMisaligned:
		return "fragment start or size is not a multiple of the alignment"
	case ErrFragmentWrongStart:
		return "fragment does not start where the previous one ended"
	case ErrFragmentUnmerged:
		return "adjacent fragments are both available"
	case ErrFragmentUsedPastEnd:
		return "active fragment follows an inactive one"
	case ErrFragmentSizeInconsistent:
		return "active fragment sizes do not sum to the pool size"
	default:
		return "ok"
	}
}

// ErrValidation is returned by Validate to identify the first broken
// invariant it encountered, along with the table index and fragment
// values involved.
type ErrValidation struct {
	Code  ValidationCode
	Index int // table index of the offending fragment, or -1
	Start int // fragment.start, when Index >= 0
	Size  int // fragment.length, when Index >= 0
}

func (e *ErrValidation) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("fragpool: %s", e.Code)
	}
	return fmt.Sprintf("fragpool: %s (fragment[%d] start=%d length=%d)", e.Code, e.Index, e.Start, e.Size)
}
