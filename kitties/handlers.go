// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/origin"
	"github.com/bitmark-inc/kittyd/storage"
)

// Create - mint a kitty with random DNA and gender for the caller
func (e *Engine) Create(o origin.Origin) (uint64, error) {
	caller, err := e.verifier.Verify(o)
	if nil != err {
		return 0, e.reject("create", caller, err)
	}

	e.Lock()
	defer e.Unlock()

	id := uint64(0)
	err = e.transact(func(trx storage.Transaction) error {
		if err := e.canReserveStake(trx, caller); nil != err {
			return err
		}
		if err := e.canAllocate(trx); nil != err {
			return err
		}
		if !e.index.HasCapacity(trx, caller) {
			return fault.ErrExceedMaxKittyOwned
		}

		if err := e.currency.Reserve(trx, caller, e.cfg.Stake); nil != err {
			return err
		}
		id, err = e.mint(trx, caller, nil, nil)
		return err
	})
	if nil != err {
		return 0, e.reject("create", caller, err)
	}

	e.log.Infof("create: owner: %s  kitty: %d", caller, id)
	e.events.Deposit(messagebus.Created{
		Owner:   caller,
		KittyId: id,
	})
	return id, nil
}

// SetPrice - list a kitty for sale, a nil price removes the listing
func (e *Engine) SetPrice(o origin.Origin, id uint64, price *uint64) error {
	caller, err := e.verifier.Verify(o)
	if nil != err {
		return e.reject("set price", caller, err)
	}

	e.Lock()
	defer e.Unlock()

	err = e.transact(func(trx storage.Transaction) error {
		k, err := e.ownedKitty(trx, caller, id)
		if nil != err {
			return err
		}

		if nil == price {
			k.Price = nil
		} else {
			p := *price
			k.Price = &p
		}
		e.putKitty(trx, id, k)
		return nil
	})
	if nil != err {
		return e.reject("set price", caller, err)
	}

	event := messagebus.PriceSet{
		Owner:   caller,
		KittyId: id,
	}
	if nil != price {
		p := *price
		event.Price = &p
		e.log.Infof("set price: owner: %s  kitty: %d  price: %d", caller, id, p)
	} else {
		e.log.Infof("set price: owner: %s  kitty: %d  not for sale", caller, id)
	}
	e.events.Deposit(event)
	return nil
}

// Transfer - give a kitty to another account
func (e *Engine) Transfer(o origin.Origin, to account.Account, id uint64) error {
	caller, err := e.verifier.Verify(o)
	if nil != err {
		return e.reject("transfer", caller, err)
	}

	e.Lock()
	defer e.Unlock()

	err = e.transact(func(trx storage.Transaction) error {
		k, err := e.ownedKitty(trx, caller, id)
		if nil != err {
			return err
		}
		if to == caller {
			return fault.ErrTransferToSelf
		}
		if !e.index.HasCapacity(trx, to) {
			return fault.ErrExceedMaxKittyOwned
		}
		if err := e.canReserveStake(trx, to); nil != err {
			return err
		}

		return e.moveKitty(trx, id, k, to)
	})
	if nil != err {
		return e.reject("transfer", caller, err)
	}

	e.log.Infof("transfer: from: %s  to: %s  kitty: %d", caller, to, id)
	e.events.Deposit(messagebus.Transferred{
		From:    caller,
		To:      to,
		KittyId: id,
	})
	return nil
}

// Buy - purchase a listed kitty, paying the bid to its owner
//
// a bid above the asking price is paid in full
func (e *Engine) Buy(o origin.Origin, id uint64, bid uint64) error {
	caller, err := e.verifier.Verify(o)
	if nil != err {
		return e.reject("buy", caller, err)
	}

	e.Lock()
	defer e.Unlock()

	seller := account.Account{}
	err = e.transact(func(trx storage.Transaction) error {
		k, err := e.getKitty(trx, id)
		if nil != err {
			return err
		}
		seller = k.Owner
		if caller == seller {
			return fault.ErrBuyerIsKittyOwner
		}
		if !e.index.HasCapacity(trx, caller) {
			return fault.ErrExceedMaxKittyOwned
		}
		if !k.ForSale() {
			return fault.ErrKittyNotForSale
		}
		if bid < *k.Price {
			return fault.ErrBidPriceTooLow
		}

		// the buyer must keep more than the bid plus the stake
		required := bid + e.cfg.Stake
		if required < bid || e.currency.FreeBalance(trx, caller) <= required {
			return fault.ErrInsufficientBalance
		}

		err = e.currency.Transfer(trx, caller, seller, bid, balance.KeepAlive)
		if nil != err {
			return err
		}
		return e.moveKitty(trx, id, k, caller)
	})
	if nil != err {
		return e.reject("buy", caller, err)
	}

	e.log.Infof("buy: buyer: %s  seller: %s  kitty: %d  price: %d", caller, seller, id, bid)
	e.events.Deposit(messagebus.Bought{
		Buyer:   caller,
		Seller:  seller,
		KittyId: id,
		Price:   bid,
	})
	return nil
}

// Breed - mint a kitty whose DNA is a random mix of two owned parents
func (e *Engine) Breed(o origin.Origin, parent1 uint64, parent2 uint64) (uint64, error) {
	caller, err := e.verifier.Verify(o)
	if nil != err {
		return 0, e.reject("breed", caller, err)
	}

	e.Lock()
	defer e.Unlock()

	id := uint64(0)
	err = e.transact(func(trx storage.Transaction) error {
		k1, err := e.ownedKitty(trx, caller, parent1)
		if nil != err {
			return err
		}
		k2, err := e.ownedKitty(trx, caller, parent2)
		if nil != err {
			return err
		}
		if err := e.canReserveStake(trx, caller); nil != err {
			return err
		}
		if err := e.canAllocate(trx); nil != err {
			return err
		}
		if !e.index.HasCapacity(trx, caller) {
			return fault.ErrExceedMaxKittyOwned
		}

		mask := kitty.GenerateDNA(e.random, e.context)
		dna := kitty.Crossover(mask, k1.DNA, k2.DNA)

		if err := e.currency.Reserve(trx, caller, e.cfg.Stake); nil != err {
			return err
		}
		id, err = e.mint(trx, caller, &dna, nil)
		return err
	})
	if nil != err {
		return 0, e.reject("breed", caller, err)
	}

	e.log.Infof("breed: owner: %s  kitty: %d  parents: %d %d", caller, id, parent1, parent2)
	e.events.Deposit(messagebus.Bred{
		Owner:   caller,
		KittyId: id,
		Parent1: parent1,
		Parent2: parent2,
	})
	return id, nil
}
