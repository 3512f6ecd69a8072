// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheader - the block context seen by state transitions
//
// holds the height and digest of the last executed block and, while a
// block is executing, the index of the current extrinsic
package blockheader

import (
	"sync"

	"github.com/bitmark-inc/kittyd/blockdigest"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// GenesisHeight - height before any block has been executed
const GenesisHeight = 0

// keys in the chain pool
var (
	heightKey = []byte("height")
	digestKey = []byte("digest")
)

// Context - the block data needed to derive kitty DNA
type Context interface {
	Height() uint64
	ExtrinsicIndex() (uint32, bool)
}

// Header - current block data
type Header struct {
	sync.RWMutex

	height         uint64             // the current block height
	previousBlock  blockdigest.Digest // and its digest
	extrinsicIndex uint32             // position of the call being executed
	inExtrinsic    bool
}

// New - header at genesis
func New() *Header {
	return &Header{
		height: GenesisHeight,
	}
}

// Restore - load the last executed block from the chain pool
func Restore(pool storage.Handle) *Header {
	h := New()

	height, found := pool.GetN(heightKey)
	if !found {
		return h
	}
	h.height = height

	if err := blockdigest.FromBytes(&h.previousBlock, pool.Get(digestKey)); nil != err {
		logger.Panicf("blockheader: corrupt digest for height: %d  error: %s", height, err)
	}
	return h
}

// Save - record the header in the chain pool as part of a transaction
func (h *Header) Save(trx storage.Transaction, pool *storage.PoolHandle) {
	h.RLock()
	defer h.RUnlock()

	trx.PutN(pool, heightKey, h.height)
	trx.Put(pool, digestKey, h.previousBlock[:])
}

// Set - set current header data
func (h *Header) Set(height uint64, digest blockdigest.Digest) {
	h.Lock()

	h.height = height
	h.previousBlock = digest

	h.Unlock()
}

// Get - return all header data
func (h *Header) Get() (uint64, blockdigest.Digest) {
	h.RLock()
	defer h.RUnlock()

	return h.height, h.previousBlock
}

// GetNew - return block data for initialising a new block
// returns: previous block digest and the number for the new block
func (h *Header) GetNew() (blockdigest.Digest, uint64) {
	h.RLock()
	defer h.RUnlock()

	return h.previousBlock, h.height + 1
}

// Height - return current height
func (h *Header) Height() uint64 {
	h.RLock()
	defer h.RUnlock()

	return h.height
}

// SetExtrinsic - mark the start of a call within the block
func (h *Header) SetExtrinsic(index uint32) {
	h.Lock()
	h.extrinsicIndex = index
	h.inExtrinsic = true
	h.Unlock()
}

// ClearExtrinsic - no call is executing
func (h *Header) ClearExtrinsic() {
	h.Lock()
	h.extrinsicIndex = 0
	h.inExtrinsic = false
	h.Unlock()
}

// ExtrinsicIndex - index of the executing call if any
func (h *Header) ExtrinsicIndex() (uint32, bool) {
	h.RLock()
	defer h.RUnlock()

	return h.extrinsicIndex, h.inExtrinsic
}

// Exists - true once a header has been saved in the chain pool
func Exists(pool storage.Handle) bool {
	return pool.Has(heightKey)
}
