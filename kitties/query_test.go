// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/limitedset"
	"github.com/bitmark-inc/kittyd/origin"
	"github.com/bitmark-inc/kittyd/randomness"
)

func TestList(t *testing.T) {
	f := setup(t, defaultConfiguration, randomness.NewSeeded([]byte("seed")), endowment{alice, 100}, endowment{bob, 100})
	defer f.teardown()

	f.create(t, alice, 2)
	f.create(t, bob, 3)

	entries, err := f.engine.List(0, 3)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 3, len(entries), "wrong page size")
	for i, entry := range entries {
		assert.Equal(t, uint64(i), entry.Id, "wrong id")
		k, _ := f.engine.Kitty(entry.Id)
		assert.Equal(t, *k, entry.Kitty, "%d: wrong kitty", entry.Id)
	}
	assert.Equal(t, alice, entries[1].Owner, "wrong owner of 1")
	assert.Equal(t, bob, entries[2].Owner, "wrong owner of 2")

	entries, err = f.engine.List(3, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 2, len(entries), "wrong last page size")
	assert.Equal(t, uint64(3), entries[0].Id, "wrong first id of last page")
	assert.Equal(t, uint64(4), entries[1].Id, "wrong last id")

	entries, err = f.engine.List(5, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 0, len(entries), "list beyond last kitty")

	_, err = f.engine.List(0, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count accepted")
}

func TestCheck(t *testing.T) {
	f := setup(t, defaultConfiguration, randomness.NewSeeded([]byte("seed")), endowment{alice, 100}, endowment{bob, 100})
	defer f.teardown()

	assert.Nil(t, f.engine.Check(), "empty database inconsistent")

	a := f.create(t, alice, 2)
	f.create(t, bob, 1)
	assert.Nil(t, f.engine.SetPrice(origin.SignedBy(alice), a[0], price(20)), "set price error")
	assert.Nil(t, f.engine.Buy(origin.SignedBy(bob), a[0], 20), "buy error")
	assert.Nil(t, f.engine.Transfer(origin.SignedBy(alice), bob, a[1]), "transfer error")
	assert.Nil(t, f.engine.Check(), "consistent database rejected")

	// list one of bob's kitties under carol as well
	ls := limitedset.New(defaultConfiguration.MaximumOwned)
	assert.Nil(t, ls.Add(a[1]), "add error")
	trx, err := f.store.Begin()
	assert.Nil(t, err, "begin error")
	trx.Put(f.store.Pool.KittiesOwned, carol.Bytes(), ls.Pack())
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, fault.ErrOwnershipInconsistent, f.engine.Check(), "extra listing accepted")

	// kitty without a listing
	trx, err = f.store.Begin()
	assert.Nil(t, err, "begin error")
	trx.Delete(f.store.Pool.KittiesOwned, carol.Bytes())
	trx.Delete(f.store.Pool.KittiesOwned, bob.Bytes())
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, fault.ErrOwnershipInconsistent, f.engine.Check(), "missing listing accepted")
}
