// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragpool

import (
	"errors"
	"testing"
)

func wantCode(t *testing.T, err error, want ValidationCode) {
	t.Helper()
	var ve *ErrValidation
	if !errors.As(err, &ve) {
		t.Fatalf("got %v (%T), want *ErrValidation", err, err)
	}
	if ve.Code != want {
		t.Fatalf("got code %v, want %v", ve.Code, want)
	}
}

func TestValidateFreshPoolOK(t *testing.T) {
	p := newScenarioPool(t)
	if err := p.Validate(); err != nil {
		t.Fatalf("fresh pool should validate: %v", err)
	}
}

func TestValidateDetectsWrongStart(t *testing.T) {
	p := newScenarioPool(t)
	p.fragment[0] = fragment{start: 0, length: 32}
	p.fragment[1] = fragment{start: 40, length: -24} // gap between 32 and 40
	wantCode(t, p.Validate(), ErrFragmentWrongStart)
}

func TestValidateDetectsMisalignment(t *testing.T) {
	buf := make([]byte, 256)
	p, err := New(buf, 4, 6)
	if err != nil {
		t.Fatal(err)
	}
	p.fragment[0] = fragment{start: 0, length: -3}
	p.fragment[1] = fragment{start: 3, length: 253}
	wantCode(t, p.Validate(), ErrFragmentMisaligned)
}

func TestValidateDetectsUnmergedAvailables(t *testing.T) {
	p := newScenarioPool(t)
	p.fragment[0] = fragment{start: 0, length: 32}
	p.fragment[1] = fragment{start: 32, length: 224}
	wantCode(t, p.Validate(), ErrFragmentUnmerged)
}

func TestValidateDetectsUsedPastEnd(t *testing.T) {
	p := newScenarioPool(t)
	p.fragment[0] = fragment{start: 0, length: -64}
	p.fragment[1] = fragment{} // Inactive
	p.fragment[2] = fragment{start: 64, length: 192}
	wantCode(t, p.Validate(), ErrFragmentUsedPastEnd)
}

func TestValidateDetectsSizeMismatch(t *testing.T) {
	p := newScenarioPool(t)
	p.fragment[0] = fragment{start: 0, length: -64}
	// Active prefix ends here, claiming only 64 of the pool's 256 bytes.
	wantCode(t, p.Validate(), ErrFragmentSizeInconsistent)
}

func TestValidateDetectsBadAlignmentField(t *testing.T) {
	p := newScenarioPool(t)
	p.alignment = 3
	wantCode(t, p.Validate(), ErrAlignmentInvalid)
}

func TestValidateDetectsEmptyTable(t *testing.T) {
	p := newScenarioPool(t)
	p.fragment = nil
	wantCode(t, p.Validate(), ErrFragmentCountInvalid)
}
