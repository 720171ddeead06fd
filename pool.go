// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

import "math"

// MaxSize disables the upper clamp on a requested or resized fragment: a
// Request or Resize given MaxSize as its max/new size is satisfied with
// the whole selected (or following) fragment, unrounded.
const MaxSize = math.MaxInt

// State classifies a fragment's role within the pool.
type State int

const (
	// Inactive marks an unused fragment-table slot.
	Inactive State = iota

	// Available marks a fragment of unallocated bytes eligible for a
	// future Request.
	Available

	// Allocated marks a fragment currently on loan to a caller.
	Allocated
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Available:
		return "available"
	case Allocated:
		return "allocated"
	default:
		return "unknown"
	}
}

// Handle identifies a fragment previously returned by Request, Resize or
// Reallocate. The zero Handle is returned alongside an error whenever an
// operation fails; it is also the Handle of a fragment that starts at
// buf[0], so only the error tells a failure apart.
type Handle struct {
	start int // byte offset of the fragment within Pool.buf
}

// fragment is one record of the fragment table. length encodes both the
// fragment's state and its size: positive for Available, negative (the
// two's complement of the size) for Allocated, zero for Inactive. start is
// always expressed as a byte offset into the owning Pool's buf, which
// keeps the table free of raw pointers.
type fragment struct {
	start  int
	length int
}

func (f fragment) classify() State {
	switch {
	case f.length > 0:
		return Available
	case f.length < 0:
		return Allocated
	default:
		return Inactive
	}
}

// size returns the number of bytes the fragment occupies, regardless of
// state. It is meaningless for an Inactive fragment (always zero).
func (f fragment) size() int {
	if f.length < 0 {
		return -f.length
	}
	return f.length
}

func (f fragment) end() int { return f.start + f.size() }

// Pool is a fixed byte region partitioned into a bounded number of
// variable-sized fragments. The zero Pool is not usable; construct one
// with New.
//
// A Pool is not safe for concurrent use. Every operation runs to
// completion without blocking or allocating, so a Pool may be used from
// interrupt context provided the caller supplies mutual exclusion by
// external means.
type Pool struct {
	buf       []byte
	alignment int
	base      int
	fragment  []fragment
}

// New constructs a Pool managing buf, partitioned into at most fragments
// fragments, with every fragment's start and size aligned to alignment
// bytes. alignment must be a nonzero power of two; fragments must be at
// least 2 for the pool to be of any use (a pool with a single slot can
// never split a fragment). New resets the pool before returning it.
//
// New assumes buf[0] itself lies on an alignment boundary. Use NewAt when
// the real backing address of buf[0] is not aligned (for example, buf is
// a sub-slice of a larger, independently aligned buffer) — alignment is
// then computed relative to that address rather than to buf[0].
func New(buf []byte, alignment, fragments int) (*Pool, error) {
	return NewAt(buf, alignment, fragments, 0)
}

// NewAt is New, but treats buf[0] as if it sat at the given base address
// (or, equivalently, base bytes past some alignment boundary) rather than
// assuming buf[0] is itself aligned. It plays the same role for Pool that
// InnerFiler's off parameter plays for a Filer: a pure offset translation
// applied before every alignment computation, with no effect on how buf
// is indexed.
func NewAt(buf []byte, alignment, fragments, base int) (*Pool, error) {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, &ErrINVAL{"fragpool.New: alignment not a power of two", alignment}
	}
	if fragments < 2 {
		return nil, &ErrINVAL{"fragpool.New: fragment count too small", fragments}
	}
	if base < 0 {
		return nil, &ErrINVAL{"fragpool.New: base must not be negative", base}
	}
	p := &Pool{
		buf:       buf,
		alignment: alignment,
		base:      base,
		fragment:  make([]fragment, fragments),
	}
	p.Reset()
	return p, nil
}

// Reset discards all outstanding allocations and returns the pool to its
// initial state: a single Available fragment covering the whole
// alignment-adjusted buffer, with every other table slot Inactive.
func (p *Pool) Reset() {
	begin := alignUp(p.base, p.alignment) - p.base
	end := alignDown(p.base+len(p.buf), p.alignment) - p.base
	for i := range p.fragment {
		p.fragment[i] = fragment{}
	}
	if end > begin {
		p.fragment[0] = fragment{start: begin, length: end - begin}
	}
}
