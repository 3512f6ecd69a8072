// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
	maximumOwned   = 3
)

var (
	alice = account.Account{Test: true, PublicKey: [account.PublicKeyLength]byte{1}}
	bob   = account.Account{Test: true, PublicKey: [account.PublicKeyLength]byte{2}}
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func setup(t *testing.T) (*storage.Store, *ownership.Index) {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return s, ownership.New(s.Pool.KittiesOwned, maximumOwned)
}

func TestAddAndList(t *testing.T) {
	s, ix := setup(t)
	defer s.Close()

	trx, err := s.Begin()
	assert.Nil(t, err, "begin error")
	for id := uint64(0); id < maximumOwned; id += 1 {
		assert.Nil(t, ix.Add(trx, alice, id), "add %d", id)
	}
	assert.False(t, ix.HasCapacity(trx, alice), "alice should be full")
	assert.True(t, ix.HasCapacity(trx, bob), "bob should have capacity")

	err = ix.Add(trx, alice, 99)
	assert.Equal(t, fault.ErrExceedMaxKittyOwned, err, "add beyond limit")
	assert.Equal(t, []uint64{0, 1, 2}, ix.List(trx, alice), "list changed by failed add")

	// nothing committed yet
	assert.Empty(t, ix.List(nil, alice), "uncommitted list visible")

	assert.Nil(t, trx.Commit(), "commit error")
	assert.Equal(t, []uint64{0, 1, 2}, ix.List(nil, alice), "wrong committed list")
	assert.True(t, ix.Owns(nil, alice, 1), "alice should own 1")
	assert.False(t, ix.Owns(nil, bob, 1), "bob should not own 1")
}

func TestRemove(t *testing.T) {
	s, ix := setup(t)
	defer s.Close()

	trx, err := s.Begin()
	assert.Nil(t, err, "begin error")
	assert.Nil(t, ix.Add(trx, alice, 7), "add")

	err = ix.Remove(trx, alice, 8)
	assert.Equal(t, fault.ErrKittyNotFound, err, "remove missing id")
	assert.Equal(t, []uint64{7}, ix.List(trx, alice), "list changed by failed remove")

	assert.Nil(t, ix.Remove(trx, alice, 7), "remove")
	assert.Empty(t, ix.List(trx, alice), "list should be empty")
	assert.Nil(t, trx.Commit(), "commit error")

	assert.False(t, s.Pool.KittiesOwned.Has(alice.Bytes()), "empty list should not be stored")
}

func TestTransfer(t *testing.T) {
	s, ix := setup(t)
	defer s.Close()

	trx, err := s.Begin()
	assert.Nil(t, err, "begin error")
	assert.Nil(t, ix.Add(trx, alice, 1), "add")
	assert.Nil(t, ix.Add(trx, alice, 2), "add")
	for id := uint64(10); id < 10+maximumOwned; id += 1 {
		assert.Nil(t, ix.Add(trx, bob, id), "add %d", id)
	}

	err = ix.Transfer(trx, alice, bob, 1)
	assert.Equal(t, fault.ErrExceedMaxKittyOwned, err, "transfer to a full list")
	assert.Equal(t, []uint64{1, 2}, ix.List(trx, alice), "sender changed by failed transfer")

	err = ix.Transfer(trx, bob, alice, 5)
	assert.Equal(t, fault.ErrKittyNotFound, err, "transfer of unowned id")

	err = ix.Transfer(trx, alice, alice, 1)
	assert.Equal(t, fault.ErrTransferToSelf, err, "transfer to self")

	assert.Nil(t, ix.Transfer(trx, bob, alice, 11), "transfer")
	assert.Equal(t, []uint64{1, 2, 11}, ix.List(trx, alice), "wrong receiver list")
	assert.Equal(t, []uint64{10, 12}, ix.List(trx, bob), "wrong sender list")
	trx.Abort()
}
