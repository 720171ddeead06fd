// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool_test

import (
	"fmt"

	"github.com/pabigot/fragpool"
)

// This example sketches the use case fragpool is built for: a UART
// driver receives bytes in small bursts of unpredictable total length,
// and an HDLC framer needs a single contiguous buffer per frame. The
// reader requests a generously sized buffer up front, shrinks it once
// the real frame length is known from a length field or terminating
// flag byte, and releases it once the framer has consumed the frame.
func Example() {
	p, err := fragpool.New(make([]byte, 4096), 4, 16)
	if err != nil {
		panic(err)
	}

	// A frame could be as small as a few bytes or as large as the
	// receiver's maximum transmission unit; ask for a comfortably large
	// buffer and trim it once the real length is known.
	const mtu = 512
	h, frame, err := p.Request(64, mtu)
	if err != nil {
		panic(err)
	}

	// ... bytes trickle in from the UART and get appended to frame ...
	// Resize always rounds up to the pool's alignment, so an actual
	// on-wire length of 37 bytes claims a 40-byte region.
	const actualLength = 37
	frame, err = p.Resize(h, actualLength)
	if err != nil {
		panic(err)
	}
	fmt.Println("frame buffer length:", len(frame))

	// ... hand frame[:actualLength] to the HDLC layer for decoding ...

	if err := p.Release(h); err != nil {
		panic(err)
	}

	// Output:
	// frame buffer length: 40
}
