// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the index of kitties held by each account
//
// from storage/doc.go:
//
//   KittiesOwned  owner - varint count ++ varint kitty ids
//
// every account shares the same maximum list length; an account
// that owns nothing has no record
package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/limitedset"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Index - access to the owned lists in a pool
type Index struct {
	pool  *storage.PoolHandle
	limit int
}

// New - index over a pool with a per-account limit
func New(pool *storage.PoolHandle, limit int) *Index {
	return &Index{
		pool:  pool,
		limit: limit,
	}
}

// read the list, a nil trx reads the committed data
func (ix *Index) get(trx storage.Transaction, owner account.Account) *limitedset.LimitedSet {
	var packed []byte
	if nil == trx {
		packed = ix.pool.Get(owner.Bytes())
	} else {
		packed = trx.Get(ix.pool, owner.Bytes())
	}
	if nil == packed {
		return limitedset.New(ix.limit)
	}

	ls, err := limitedset.Unpack(packed, ix.limit)
	if nil != err {
		logger.Criticalf("ownership: owner: %s  packed: %x  error: %s", owner, packed, err)
		logger.Panic("ownership: KittiesOwned database corrupt")
	}
	return ls
}

func (ix *Index) put(trx storage.Transaction, owner account.Account, ls *limitedset.LimitedSet) {
	if 0 == ls.Len() {
		trx.Delete(ix.pool, owner.Bytes())
		return
	}
	trx.Put(ix.pool, owner.Bytes(), ls.Pack())
}

// List - kitty ids owned by an account
func (ix *Index) List(trx storage.Transaction, owner account.Account) []uint64 {
	return ix.get(trx, owner).Items()
}

// Owns - check if id is in the owner's list
func (ix *Index) Owns(trx storage.Transaction, owner account.Account, id uint64) bool {
	return ix.get(trx, owner).Exists(id)
}

// HasCapacity - check the owner can receive one more kitty
func (ix *Index) HasCapacity(trx storage.Transaction, owner account.Account) bool {
	return !ix.get(trx, owner).Full()
}

// Add - append id to the owner's list
//
// fails with fault.ErrExceedMaxKittyOwned when the list is full,
// nothing is written on failure
func (ix *Index) Add(trx storage.Transaction, owner account.Account, id uint64) error {
	ls := ix.get(trx, owner)
	if err := ls.Add(id); nil != err {
		return err
	}
	ix.put(trx, owner, ls)
	return nil
}

// Remove - delete id from the owner's list
//
// fails with fault.ErrKittyNotFound when id is not listed,
// nothing is written on failure
func (ix *Index) Remove(trx storage.Transaction, owner account.Account, id uint64) error {
	ls := ix.get(trx, owner)
	if err := ls.Remove(id); nil != err {
		return err
	}
	ix.put(trx, owner, ls)
	return nil
}

// Transfer - move id from one list to another
//
// both lists are checked before either is written
func (ix *Index) Transfer(trx storage.Transaction, from account.Account, to account.Account, id uint64) error {
	if from == to {
		return fault.ErrTransferToSelf
	}

	fromList := ix.get(trx, from)
	toList := ix.get(trx, to)

	if !fromList.Exists(id) {
		return fault.ErrKittyNotFound
	}
	if toList.Full() {
		return fault.ErrExceedMaxKittyOwned
	}

	// cannot fail after the checks above
	_ = fromList.Remove(id)
	_ = toList.Add(id)

	ix.put(trx, from, fromList)
	ix.put(trx, to, toList)
	return nil
}
