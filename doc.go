// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Fixed-capacity fragment memory management.

package fragpool

/*

Package fragpool implements a fixed-capacity, non-blocking, heap-free
memory pool that carves a single caller-owned byte buffer into a bounded
number of variable-sized contiguous fragments.

The intended use case is bridging a stream-oriented interface (a serial
byte feed) to a packet-oriented interface (an HDLC framer or similar) on
a resource-constrained device: a reader allocates a buffer before the
final packet length is known, trims it once the length is known, and
releases it once the packet has been consumed. Multiple packets may be
in flight at once, each occupying its own fragment of the pool.

Pool file

A Pool owns a contiguous byte region, `buf`, supplied by the caller at
construction time. The region is partitioned, front to back, into a
bounded number of fragments recorded in an internal fragment table of
fixed size N. Every fragment is in one of three states:

 1. Allocated: handed out to a caller and not yet released.
 2. Available: unused and eligible for a future Request.
 3. Inactive: an unused table slot; inactive slots always form a
    contiguous suffix of the table.

No two Active (Allocated or Available) fragments are ever adjacent with
both Available, and the Active fragments, taken in table order, exactly
partition the alignment-adjusted byte region with no gaps.

Fragment handles

A Go Pool's buffer is an ordinary `[]byte`, and slices do not make good
map/table keys or stable identifiers, so every allocating operation
returns an opaque Handle alongside the []byte view into buf; Release,
Resize and Reallocate take the Handle back. A Handle is only ever valid
for the Pool that produced it.

Non-goals

fragpool is not a general-purpose allocator. There is no internal free
list, no size classing, and no coalescing beyond immediate physical
neighbors. It is not safe for concurrent use: a Pool has no internal
synchronization: the caller is expected to supply interrupt masking or a
critical section around it on a resource-constrained device. Treat a
*Pool as safe to pass between goroutines but never safe to use from two
of them concurrently.

*/
