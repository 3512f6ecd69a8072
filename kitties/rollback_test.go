// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/kitties/mocks"
	"github.com/bitmark-inc/kittyd/origin"
	"github.com/bitmark-inc/kittyd/randomness"
)

// a ledger failure after the checks must leave nothing behind
func TestBuyLedgerFailureAborts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := setup(t, defaultConfiguration, randomness.NewSeeded([]byte("seed")), endowment{alice, 100})
	defer f.teardown()

	ids := f.create(t, alice, 1)
	assert.Nil(t, f.engine.SetPrice(origin.SignedBy(alice), ids[0], price(30)), "set price error")

	currency := mocks.NewMockCurrency(ctl)
	sink := mocks.NewMockSink(ctl)

	currency.EXPECT().FreeBalance(gomock.Any(), bob).Return(uint64(1000)).Times(1)
	currency.EXPECT().Transfer(gomock.Any(), bob, alice, uint64(30), balance.KeepAlive).Return(fault.ErrKeepAlive).Times(1)
	sink.EXPECT().Deposit(gomock.Any()).Times(0)

	engine, err := kitties.New(defaultConfiguration, kitties.Handles{
		Store:    f.store,
		Verifier: origin.SignedVerifier{},
		Currency: currency,
		Random:   randomness.Fixed{0},
		Context:  f.header,
		Events:   sink,
	})
	assert.Nil(t, err, "engine error")

	err = engine.Buy(origin.SignedBy(bob), ids[0], 30)
	assert.Equal(t, fault.ErrKeepAlive, err, "ledger error not returned")

	k, _ := engine.Kitty(ids[0])
	assert.Equal(t, alice, k.Owner, "owner changed")
	assert.Equal(t, price(30), k.Price, "price changed")
	assert.Equal(t, ids, engine.KittiesOwned(alice), "ownership changed")
	assert.Equal(t, 0, len(engine.KittiesOwned(bob)), "buyer gained kitty")
}

// the stake moves to the new owner before it is released from the old one
func TestTransferStakeOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := setup(t, defaultConfiguration, randomness.NewSeeded([]byte("seed")), endowment{alice, 100})
	defer f.teardown()

	ids := f.create(t, alice, 1)

	currency := mocks.NewMockCurrency(ctl)
	sink := mocks.NewMockSink(ctl)

	gomock.InOrder(
		currency.EXPECT().FreeBalance(gomock.Any(), bob).Return(uint64(stake)),
		currency.EXPECT().Reserve(gomock.Any(), bob, uint64(stake)).Return(nil),
		currency.EXPECT().Unreserve(gomock.Any(), alice, uint64(stake)).Return(uint64(0)),
	)
	sink.EXPECT().Deposit(gomock.Any()).Times(1)

	engine, err := kitties.New(defaultConfiguration, kitties.Handles{
		Store:    f.store,
		Verifier: origin.SignedVerifier{},
		Currency: currency,
		Random:   randomness.Fixed{0},
		Context:  f.header,
		Events:   sink,
	})
	assert.Nil(t, err, "engine error")

	assert.Nil(t, engine.Transfer(origin.SignedBy(alice), bob, ids[0]), "transfer error")

	k, _ := engine.Kitty(ids[0])
	assert.Equal(t, bob, k.Owner, "owner not changed")
}

// no randomness is consumed when a create is rejected
func TestCreateRejectedUsesNoRandomness(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	source.EXPECT().Random(gomock.Any()).Times(0)

	f := setup(t, defaultConfiguration, source)
	defer f.teardown()

	_, err := f.engine.Create(origin.SignedBy(alice))
	assert.Equal(t, fault.ErrInsufficientBalance, err, "create without funds")

	_, err = f.engine.Kitty(0)
	assert.Equal(t, fault.ErrKittyNotFound, err, "kitty stored")
}
