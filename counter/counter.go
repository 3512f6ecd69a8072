// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - allocation of kitty identifiers
//
// identifiers are issued from a single persistent counter, each
// value exactly once in increasing order starting from zero
package counter

import (
	"github.com/bitmark-inc/kittyd/fault"
)

// Width - number of bits in an identifier
type Width uint

// supported identifier widths
const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// Valid - check for a supported width
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

// Maximum - largest value representable in this width
func (w Width) Maximum() uint64 {
	if w >= Width64 {
		return ^uint64(0)
	}
	return uint64(1)<<w - 1
}

// Next - allocate an identifier from the current counter value
//
// returns the identifier (the current value) and the value to store
// back if the caller's operation succeeds; the counter itself is not
// modified here
//
// the maximum value is never reached so the counter cannot wrap
func Next(current uint64, w Width) (uint64, uint64, error) {
	max := w.Maximum()
	if current >= max || current+1 == max {
		return 0, 0, fault.ErrKittyIndexOverflow
	}
	return current, current + 1, nil
}
