// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

func kittyKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// read a kitty, a nil trx reads the committed data
func (e *Engine) getKitty(trx storage.Transaction, id uint64) (*kitty.Kitty, error) {
	var packed []byte
	if nil == trx {
		packed = e.store.Pool.Kitties.Get(kittyKey(id))
	} else {
		packed = trx.Get(e.store.Pool.Kitties, kittyKey(id))
	}
	if nil == packed {
		return nil, fault.ErrKittyNotFound
	}

	k, err := kitty.Packed(packed).Unpack()
	if nil != err {
		logger.Criticalf("kitties: id: %d  packed: %x  error: %s", id, packed, err)
		logger.Panic("kitties: Kitties database corrupt")
	}
	return k, nil
}

func (e *Engine) putKitty(trx storage.Transaction, id uint64, k *kitty.Kitty) {
	trx.Put(e.store.Pool.Kitties, kittyKey(id), k.Pack())
}

// get a kitty and confirm its owner
func (e *Engine) ownedKitty(trx storage.Transaction, owner account.Account, id uint64) (*kitty.Kitty, error) {
	k, err := e.getKitty(trx, id)
	if nil != err {
		return nil, err
	}
	if owner != k.Owner {
		return nil, fault.ErrNotKittyOwner
	}
	return k, nil
}

// the counter value, a nil trx reads the committed data
func (e *Engine) nextId(trx storage.Transaction) uint64 {
	var next uint64
	if nil == trx {
		next, _ = e.store.Pool.LastKittyId.GetN(nextKey)
	} else {
		next, _ = trx.GetN(e.store.Pool.LastKittyId, nextKey)
	}
	return next
}

// check that the counter can issue another id
func (e *Engine) canAllocate(trx storage.Transaction) error {
	_, _, err := counter.Next(e.nextId(trx), e.cfg.IndexWidth)
	return err
}

// check the stake can be reserved from an account
func (e *Engine) canReserveStake(trx storage.Transaction, a account.Account) error {
	if e.currency.FreeBalance(trx, a) < e.cfg.Stake {
		return fault.ErrInsufficientBalance
	}
	return nil
}

// mint a new kitty
//
// a nil dna or gender is derived from the randomness source; nothing
// is written unless the id is allocated and the owner has capacity
func (e *Engine) mint(trx storage.Transaction, owner account.Account, dna *kitty.DNA, gender *kitty.Gender) (uint64, error) {
	id, next, err := counter.Next(e.nextId(trx), e.cfg.IndexWidth)
	if nil != err {
		return 0, err
	}

	k := &kitty.Kitty{
		Owner: owner,
	}
	if nil == dna {
		k.DNA = kitty.GenerateDNA(e.random, e.context)
	} else {
		k.DNA = *dna
	}
	if nil == gender {
		k.Gender = kitty.GenerateGender(e.random)
	} else {
		k.Gender = *gender
	}

	err = e.index.Add(trx, owner, id)
	if nil != err {
		return 0, err
	}

	e.putKitty(trx, id, k)
	trx.PutN(e.store.Pool.LastKittyId, nextKey, next)

	return id, nil
}

// give a kitty to a new owner and clear its price
//
// stake: reserve from the new owner, then release from the old one
func (e *Engine) moveKitty(trx storage.Transaction, id uint64, k *kitty.Kitty, to account.Account) error {
	from := k.Owner

	err := e.currency.Reserve(trx, to, e.cfg.Stake)
	if nil != err {
		return err
	}
	if remainder := e.currency.Unreserve(trx, from, e.cfg.Stake); 0 != remainder {
		e.log.Warnf("kitty: %d  owner: %s  stake short by: %d", id, from, remainder)
	}

	err = e.index.Transfer(trx, from, to, id)
	if nil != err {
		return err
	}

	k.Owner = to
	k.Price = nil
	e.putKitty(trx, id, k)
	return nil
}
