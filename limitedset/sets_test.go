// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package limitedset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/limitedset"
)

func TestAddToLimit(t *testing.T) {
	ls := limitedset.New(3)

	for _, v := range []uint64{5, 9, 2} {
		assert.Nil(t, ls.Add(v), "add %d", v)
	}
	assert.True(t, ls.Full(), "set should be full")

	err := ls.Add(7)
	assert.Equal(t, fault.ErrExceedMaxKittyOwned, err, "add beyond limit")
	assert.Equal(t, []uint64{5, 9, 2}, ls.Items(), "set changed by failed add")
}

func TestAddDuplicate(t *testing.T) {
	ls := limitedset.New(3)
	assert.Nil(t, ls.Add(4), "add 4")

	err := ls.Add(4)
	assert.Equal(t, fault.ErrKittyExists, err, "duplicate accepted")
	assert.Equal(t, []uint64{4}, ls.Items(), "set changed by duplicate add")

	// a full set still reports the duplicate
	assert.Nil(t, ls.Add(5), "add 5")
	assert.Nil(t, ls.Add(6), "add 6")
	assert.Equal(t, fault.ErrKittyExists, ls.Add(5), "duplicate in full set")
}

func TestRemove(t *testing.T) {
	ls := limitedset.New(5)
	for _, v := range []uint64{1, 2, 3, 4} {
		assert.Nil(t, ls.Add(v), "add %d", v)
	}

	assert.Nil(t, ls.Remove(2), "remove 2")
	assert.False(t, ls.Exists(2), "2 still present")
	assert.Equal(t, []uint64{1, 4, 3}, ls.Items(), "last item should move into the gap")

	err := ls.Remove(2)
	assert.Equal(t, fault.ErrKittyNotFound, err, "remove missing item")
	assert.Equal(t, []uint64{1, 4, 3}, ls.Items(), "set changed by failed remove")

	assert.Nil(t, ls.Remove(3), "remove last item")
	assert.Equal(t, []uint64{1, 4}, ls.Items(), "wrong items after removing last")
}

func TestPackUnpack(t *testing.T) {
	ls := limitedset.New(4)
	for _, v := range []uint64{0, 300, 70000} {
		assert.Nil(t, ls.Add(v), "add %d", v)
	}

	packed := ls.Pack()
	assert.Equal(t, []byte{0x03, 0x00, 0xac, 0x02, 0xf0, 0xa2, 0x04}, packed, "wrong packed form")

	restored, err := limitedset.Unpack(packed, 4)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, ls.Items(), restored.Items(), "wrong items after unpack")
	assert.False(t, restored.Full(), "restored set should have space")

	_, err = limitedset.Unpack(packed[:len(packed)-1], 4)
	assert.Equal(t, fault.ErrUnpackedRecordTruncated, err, "truncated record accepted")

	_, err = limitedset.Unpack([]byte{}, 4)
	assert.Equal(t, fault.ErrUnpackedRecordTruncated, err, "empty record accepted")
}
