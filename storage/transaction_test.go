// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
)

func TestBeginTwice(t *testing.T) {
	s := setup(t)
	defer s.Close()

	trx, err := s.Begin()
	assert.Nil(t, err, "first time Begin should not return any error")
	assert.True(t, trx.InUse(), "transaction not in use")

	_, err = s.Begin()
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "second time Begin should return error")

	trx.Abort()
	assert.False(t, trx.InUse(), "transaction still in use after abort")

	trx, err = s.Begin()
	assert.Nil(t, err, "Begin after Abort should not return any error")
	trx.Abort()
}

func TestReadOwnWrites(t *testing.T) {
	s := setup(t)
	defer s.Close()

	putItems(t, s, sortedElements)

	trx, err := s.Begin()
	assert.Nil(t, err, "begin error")

	trx.Put(s.Pool.Chain, []byte("key-new"), []byte("data-new"))
	trx.Delete(s.Pool.Chain, []byte("key-one"))
	trx.PutN(s.Pool.Chain, []byte("key-n"), 7)

	// visible inside the transaction
	assert.Equal(t, []byte("data-new"), trx.Get(s.Pool.Chain, []byte("key-new")), "own put not visible")
	assert.True(t, trx.Has(s.Pool.Chain, []byte("key-new")), "own put not present")
	assert.Nil(t, trx.Get(s.Pool.Chain, []byte("key-one")), "own delete not visible")
	assert.False(t, trx.Has(s.Pool.Chain, []byte("key-one")), "own delete still present")
	assert.Equal(t, []byte("data-two"), trx.Get(s.Pool.Chain, []byte("key-two")), "committed value not visible")
	n, found := trx.GetN(s.Pool.Chain, []byte("key-n"))
	assert.True(t, found, "own PutN not visible")
	assert.Equal(t, uint64(7), n, "wrong PutN value")

	// not visible outside until committed
	assert.Nil(t, s.Pool.Chain.Get([]byte("key-new")), "uncommitted put leaked")
	assert.True(t, s.Pool.Chain.Has([]byte("key-one")), "uncommitted delete leaked")

	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, []byte("data-new"), s.Pool.Chain.Get([]byte("key-new")), "committed put missing")
	assert.False(t, s.Pool.Chain.Has([]byte("key-one")), "committed delete missing")
}

func TestAbortDiscards(t *testing.T) {
	s := setup(t)
	defer s.Close()

	putItems(t, s, sortedElements)

	trx, err := s.Begin()
	assert.Nil(t, err, "begin error")
	trx.Put(s.Pool.Chain, []byte("key-two"), []byte("changed"))
	trx.Delete(s.Pool.Chain, []byte("key-six"))
	trx.Put(s.Pool.Kitties, []byte{0, 0, 0, 0, 0, 0, 0, 1}, []byte("kitty"))
	trx.Abort()

	assert.Equal(t, []byte("data-two"), s.Pool.Chain.Get([]byte("key-two")), "aborted put applied")
	assert.True(t, s.Pool.Chain.Has([]byte("key-six")), "aborted delete applied")
	assert.False(t, s.Pool.Kitties.Has([]byte{0, 0, 0, 0, 0, 0, 0, 1}), "aborted put applied")

	// a fresh transaction does not see the aborted writes
	trx, err = s.Begin()
	assert.Nil(t, err, "begin error")
	assert.Equal(t, []byte("data-two"), trx.Get(s.Pool.Chain, []byte("key-two")), "aborted write visible")
	trx.Abort()
}

func TestPutCopiesValue(t *testing.T) {
	s := setup(t)
	defer s.Close()

	value := []byte("abcd")

	trx, err := s.Begin()
	assert.Nil(t, err, "begin error")
	trx.Put(s.Pool.Chain, []byte("key"), value)
	value[0] = 'X'
	assert.Equal(t, []byte("abcd"), trx.Get(s.Pool.Chain, []byte("key")), "cached value aliased caller buffer")
	assert.Nil(t, trx.Commit(), "commit error")
	assert.Equal(t, []byte("abcd"), s.Pool.Chain.Get([]byte("key")), "stored value aliased caller buffer")
}
