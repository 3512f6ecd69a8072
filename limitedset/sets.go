// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package limitedset - an ordered list of identifiers with a fixed capacity
package limitedset

import (
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/util"
)

// LimitedSet - holds up to 'limit' items, each at most once
type LimitedSet struct {
	limit int
	items []uint64
}

// New - create an empty set that holds up to 'n' items
func New(n int) *LimitedSet {
	return &LimitedSet{
		limit: n,
		items: make([]uint64, 0, n),
	}
}

// Len - number of items held
func (ls *LimitedSet) Len() int {
	return len(ls.items)
}

// Full - no space for another item
func (ls *LimitedSet) Full() bool {
	return len(ls.items) >= ls.limit
}

// Items - copy of the items in insertion order (modified by Remove)
func (ls *LimitedSet) Items() []uint64 {
	result := make([]uint64, len(ls.items))
	copy(result, ls.items)
	return result
}

// Exists - check to see if item is in the set
func (ls *LimitedSet) Exists(item uint64) bool {
	return ls.position(item) >= 0
}

// Add - append an item, the set is unchanged on error
func (ls *LimitedSet) Add(item uint64) error {
	if ls.Exists(item) {
		return fault.ErrKittyExists
	}
	if ls.Full() {
		return fault.ErrExceedMaxKittyOwned
	}
	ls.items = append(ls.items, item)
	return nil
}

// Remove - delete an item by moving the last item into its place
//
// the set is unchanged on error
func (ls *LimitedSet) Remove(item uint64) error {
	i := ls.position(item)
	if i < 0 {
		return fault.ErrKittyNotFound
	}
	last := len(ls.items) - 1
	ls.items[i] = ls.items[last]
	ls.items = ls.items[:last]
	return nil
}

func (ls *LimitedSet) position(item uint64) int {
	for i, v := range ls.items {
		if v == item {
			return i
		}
	}
	return -1
}

// Pack - varint count followed by varint items
func (ls *LimitedSet) Pack() []byte {
	buffer := util.ToVarint64(uint64(len(ls.items)))
	for _, v := range ls.items {
		buffer = util.AppendVarint64(buffer, v)
	}
	return buffer
}

// Unpack - restore a packed set with the given limit
//
// a stored list longer than the limit is kept whole; it is only
// prevented from growing
func Unpack(buffer []byte, limit int) (*LimitedSet, error) {
	count, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrUnpackedRecordTruncated
	}
	buffer = buffer[n:]

	ls := New(limit)
	for i := uint64(0); i < count; i += 1 {
		v, n := util.FromVarint64(buffer)
		if 0 == n {
			return nil, fault.ErrUnpackedRecordTruncated
		}
		ls.items = append(ls.items, v)
		buffer = buffer[n:]
	}
	return ls, nil
}
