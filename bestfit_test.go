// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

import "testing"

func TestBestFitAmongNoCandidates(t *testing.T) {
	if _, ok := bestFitAmong(1, 10, nil); ok {
		t.Fatal("expected no match against an empty candidate list")
	}
}

func TestBestFitAmongRejectsBelowMin(t *testing.T) {
	cands := []candidate{{0, 4}, {1, 8}}
	if _, ok := bestFitAmong(16, 32, cands); ok {
		t.Fatal("expected no candidate to satisfy min=16")
	}
}

// When every qualifying candidate undershoots max, the richest (largest)
// one wins.
func TestBestFitAmongPrefersLargestUnderMax(t *testing.T) {
	cands := []candidate{{0, 10}, {1, 30}, {2, 20}}
	got, ok := bestFitAmong(1, 100, cands)
	if !ok || got.index != 1 {
		t.Fatalf("got %+v, ok=%v, want index 1 (length 30)", got, ok)
	}
}

// Among candidates that meet or exceed max, the smallest wins.
func TestBestFitAmongPrefersSmallestAtOrAboveMax(t *testing.T) {
	cands := []candidate{{0, 200}, {1, 64}, {2, 128}}
	got, ok := bestFitAmong(1, 64, cands)
	if !ok || got.index != 1 {
		t.Fatalf("got %+v, ok=%v, want index 1 (length 64)", got, ok)
	}
}

// A candidate exactly at max always beats one below max, regardless of
// scan order.
func TestBestFitAmongExactMaxWins(t *testing.T) {
	cands := []candidate{{0, 40}, {1, 64}}
	got, ok := bestFitAmong(1, 64, cands)
	if !ok || got.index != 1 {
		t.Fatalf("got %+v, ok=%v, want index 1 (length 64)", got, ok)
	}
	// same candidates, reversed order: the algorithm is order-sensitive
	// only among ties, not between an under-max and an at-max candidate.
	cands = []candidate{{1, 64}, {0, 40}}
	got, ok = bestFitAmong(1, 64, cands)
	if !ok || got.index != 1 {
		t.Fatalf("reversed order: got %+v, ok=%v, want index 1", got, ok)
	}
}

func TestPoolBestFitScansTable(t *testing.T) {
	p := newScenarioPool(t)
	configureScenario23(p)
	got, ok := p.bestFit(24, 64)
	if !ok || got.index != 2 || got.length != 64 {
		t.Fatalf("got %+v, ok=%v, want {index:2 length:64}", got, ok)
	}
}
