// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
)

// Kitty - committed record of a kitty
func (e *Engine) Kitty(id uint64) (*kitty.Kitty, error) {
	return e.getKitty(nil, id)
}

// KittiesOwned - committed ids owned by an account
func (e *Engine) KittiesOwned(owner account.Account) []uint64 {
	return e.index.List(nil, owner)
}

// LastKittyId - the next id to be allocated, i.e. the number of kitties
func (e *Engine) LastKittyId() uint64 {
	return e.nextId(nil)
}

// Configuration - the fixed parameters
func (e *Engine) Configuration() Configuration {
	return e.cfg
}

// Entry - a kitty with its id
type Entry struct {
	Id uint64 `json:"id"`
	kitty.Kitty
}

// List - up to count committed kitties in id order, starting at id start
func (e *Engine) List(start uint64, count int) ([]Entry, error) {
	elements, err := e.store.Pool.Kitties.NewFetchCursor().Seek(kittyKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, element := range elements {
		k, err := kitty.Packed(element.Value).Unpack()
		if nil != err {
			return nil, err
		}
		entries = append(entries, Entry{
			Id:    binary.BigEndian.Uint64(element.Key),
			Kitty: *k,
		})
	}
	return entries, nil
}

// Check - confirm the ownership index and the kitty owners agree
//
// every kitty must be listed under its owner and every listed id
// must be a kitty held by that owner
func (e *Engine) Check() error {
	stored := 0
	err := e.store.Pool.Kitties.NewFetchCursor().Map(func(key []byte, value []byte) error {
		id := binary.BigEndian.Uint64(key)
		k, err := kitty.Packed(value).Unpack()
		if nil != err {
			return err
		}
		if !e.index.Owns(nil, k.Owner, id) {
			e.log.Errorf("check: kitty: %d  not listed for owner: %s", id, k.Owner)
			return fault.ErrOwnershipInconsistent
		}
		stored += 1
		return nil
	})
	if nil != err {
		return err
	}

	listed := 0
	err = e.store.Pool.KittiesOwned.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, err := account.FromBytes(key)
		if nil != err {
			return err
		}
		for _, id := range e.index.List(nil, owner) {
			k, err := e.getKitty(nil, id)
			if nil != err || owner != k.Owner {
				e.log.Errorf("check: owner: %s  lists kitty: %d  held by another", owner, id)
				return fault.ErrOwnershipInconsistent
			}
			listed += 1
		}
		return nil
	})
	if nil != err {
		return err
	}

	if stored != listed {
		e.log.Errorf("check: kitties: %d  listed: %d", stored, listed)
		return fault.ErrOwnershipInconsistent
	}
	return nil
}
