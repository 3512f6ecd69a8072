// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/blockdigest"
	"github.com/bitmark-inc/kittyd/blockheader"
)

var someDigest = blockdigest.Digest{
	0x2b, 0xa1, 0x2b, 0xa1, 0x54, 0x2b, 0xa1, 0x54,
	0x14, 0x46, 0x74, 0x29, 0x1d, 0x29, 0x1d, 0x29,
	0x2b, 0xa1, 0x2b, 0xa1, 0x54, 0x2b, 0xa1, 0x54,
	0x14, 0x46, 0x74, 0x29, 0x1d, 0x29, 0x1d, 0x29,
}

func TestHeader(t *testing.T) {
	h := blockheader.New()
	assert.Equal(t, uint64(blockheader.GenesisHeight), h.Height(), "wrong genesis height")

	someHeight := uint64(1234567890)
	h.Set(someHeight, someDigest)

	height, digest := h.Get()
	assert.Equal(t, someHeight, height, "wrong height")
	assert.Equal(t, someDigest, digest, "wrong digest")

	digest, height = h.GetNew()
	assert.Equal(t, someDigest, digest, "wrong previous digest")
	assert.Equal(t, someHeight+1, height, "wrong new height")

	assert.Equal(t, someHeight, h.Height(), "height changed by GetNew")
}

func TestExtrinsic(t *testing.T) {
	h := blockheader.New()

	_, ok := h.ExtrinsicIndex()
	assert.False(t, ok, "extrinsic present at start")

	h.SetExtrinsic(7)
	index, ok := h.ExtrinsicIndex()
	assert.True(t, ok, "extrinsic missing")
	assert.Equal(t, uint32(7), index, "wrong extrinsic index")

	h.ClearExtrinsic()
	index, ok = h.ExtrinsicIndex()
	assert.False(t, ok, "extrinsic not cleared")
	assert.Equal(t, uint32(0), index, "index not reset")
}

func TestSaveRestore(t *testing.T) {
	s := setup(t)
	defer s.Close()

	h := blockheader.Restore(s.Pool.Chain)
	assert.Equal(t, uint64(0), h.Height(), "empty pool should give genesis")

	h.Set(42, someDigest)
	trx, err := s.Begin()
	assert.Nil(t, err, "begin error")
	h.Save(trx, s.Pool.Chain)
	assert.Nil(t, trx.Commit(), "commit error")

	restored := blockheader.Restore(s.Pool.Chain)
	height, digest := restored.Get()
	assert.Equal(t, uint64(42), height, "wrong restored height")
	assert.Equal(t, someDigest, digest, "wrong restored digest")
}
