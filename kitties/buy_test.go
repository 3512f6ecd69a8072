// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/origin"
	"github.com/bitmark-inc/kittyd/randomness"
)

func TestBuyAtAskingPrice(t *testing.T) {
	f := setup(t, defaultConfiguration, randomness.NewSeeded([]byte("seed")), endowment{alice, 100}, endowment{bob, 100})
	defer f.teardown()

	ids := f.create(t, alice, 1)
	assert.Nil(t, f.engine.SetPrice(origin.SignedBy(alice), ids[0], price(30)), "set price error")
	f.events.Drain()

	aliceFree := f.free(alice)
	bobFree := f.free(bob)

	err := f.engine.Buy(origin.SignedBy(bob), ids[0], 30)
	assert.Nil(t, err, "bid equal to ask rejected")

	// seller: gains the bid and the released stake
	assert.Equal(t, aliceFree+30+stake, f.free(alice), "seller free balance")
	assert.Equal(t, uint64(0), f.reserved(alice), "seller stake not released")

	// buyer: pays the bid and reserves the stake
	assert.Equal(t, bobFree-30-stake, f.free(bob), "buyer free balance")
	assert.Equal(t, uint64(stake), f.reserved(bob), "buyer stake not reserved")

	k, _ := f.engine.Kitty(ids[0])
	assert.Equal(t, bob, k.Owner, "owner not changed")
	assert.Nil(t, k.Price, "price not cleared")
	assert.Equal(t, 0, len(f.engine.KittiesOwned(alice)), "seller still owns")
	assert.Equal(t, ids, f.engine.KittiesOwned(bob), "buyer does not own")

	events := f.events.Drain()
	assert.Equal(t, 1, len(events), "wrong number of events")
	assert.Equal(t, messagebus.Bought{Buyer: bob, Seller: alice, KittyId: ids[0], Price: 30}, events[0].Item, "wrong event")
}

func TestBuyAboveAskingPrice(t *testing.T) {
	f := setup(t, defaultConfiguration, randomness.NewSeeded([]byte("seed")), endowment{alice, 100}, endowment{bob, 100})
	defer f.teardown()

	ids := f.create(t, alice, 1)
	assert.Nil(t, f.engine.SetPrice(origin.SignedBy(alice), ids[0], price(30)), "set price error")

	assert.Nil(t, f.engine.Buy(origin.SignedBy(bob), ids[0], 40), "buy error")
	assert.Equal(t, uint64(100-40-stake), f.free(bob), "bid not paid in full")
}

func TestBuyErrors(t *testing.T) {
	f := setup(t, defaultConfiguration, randomness.NewSeeded([]byte("seed")),
		endowment{alice, 100}, endowment{bob, 100}, endowment{carol, 40})
	defer f.teardown()

	ids := f.create(t, alice, 2)

	err := f.engine.Buy(origin.SignedBy(bob), 99, 10)
	assert.Equal(t, fault.ErrKittyNotFound, err, "missing kitty bought")

	err = f.engine.Buy(origin.SignedBy(alice), ids[0], 10)
	assert.Equal(t, fault.ErrBuyerIsKittyOwner, err, "owner bought own kitty")

	err = f.engine.Buy(origin.SignedBy(bob), ids[0], 10)
	assert.Equal(t, fault.ErrKittyNotForSale, err, "unlisted kitty bought")

	assert.Nil(t, f.engine.SetPrice(origin.SignedBy(alice), ids[0], price(30)), "set price error")
	f.events.Drain()

	err = f.engine.Buy(origin.SignedBy(bob), ids[0], 29)
	assert.Equal(t, fault.ErrBidPriceTooLow, err, "low bid accepted")

	// carol has exactly bid + stake, which is not enough
	err = f.engine.Buy(origin.SignedBy(carol), ids[0], 30)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "bid without margin accepted")

	err = f.engine.Buy(origin.SignedBy(bob), ids[0], math.MaxUint64)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "overflowing bid accepted")

	k, _ := f.engine.Kitty(ids[0])
	assert.Equal(t, alice, k.Owner, "owner changed")
	assert.Equal(t, price(30), k.Price, "price changed")
	assert.Equal(t, uint64(100), f.free(bob), "buyer balance changed")
	assert.Equal(t, uint64(40), f.free(carol), "carol balance changed")
	assert.Equal(t, uint64(2*stake), f.reserved(alice), "seller reservation changed")
	assert.Equal(t, 0, f.events.Len(), "event emitted on failure")
}

func TestBuyBuyerAtCapacity(t *testing.T) {
	f := setup(t, defaultConfiguration, randomness.NewSeeded([]byte("seed")), endowment{alice, 100}, endowment{bob, 100})
	defer f.teardown()

	ids := f.create(t, alice, 1)
	f.create(t, bob, 3)
	assert.Nil(t, f.engine.SetPrice(origin.SignedBy(alice), ids[0], price(5)), "set price error")

	bobFree := f.free(bob)
	err := f.engine.Buy(origin.SignedBy(bob), ids[0], 5)
	assert.Equal(t, fault.ErrExceedMaxKittyOwned, err, "full buyer accepted")
	assert.Equal(t, bobFree, f.free(bob), "buyer balance changed")
	assert.Equal(t, ids, f.engine.KittiesOwned(alice), "seller ownership changed")
}
