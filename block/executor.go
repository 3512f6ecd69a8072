// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/blockdigest"
	"github.com/bitmark-inc/kittyd/blockheader"
	"github.com/bitmark-inc/kittyd/configuration"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/origin"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Handles - state shared with the engine
type Handles struct {
	Store  *storage.Store
	Header *blockheader.Header
	Random *randomness.Seeded
	Events *messagebus.Queue
	Engine *kitties.Engine
}

// Executor - applies blocks
type Executor struct {
	log *logger.L

	store  *storage.Store
	header *blockheader.Header
	random *randomness.Seeded
	events *messagebus.Queue
	engine *kitties.Engine
}

// Result - outcome of one call
type Result struct {
	Index   uint32  `json:"index"`
	Call    string  `json:"call"`
	KittyId *uint64 `json:"kittyId,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// Receipt - outcome of a block
type Receipt struct {
	Number  uint64               `json:"number"`
	Digest  blockdigest.Digest   `json:"digest"`
	Results []Result             `json:"results"`
	Events  []messagebus.Message `json:"events"`
}

// New - create an executor
func New(handles Handles) *Executor {
	return &Executor{
		log:    logger.New("block"),
		store:  handles.Store,
		header: handles.Header,
		random: handles.Random,
		events: handles.Events,
		engine: handles.Engine,
	}
}

// Genesis - endow the initial balances on a new database
//
// returns ErrAlreadyInitialised if any block has been recorded
func (x *Executor) Genesis(chainName string, ledger *balance.Ledger, endowments []configuration.Endowment) error {
	if blockheader.Exists(x.store.Pool.Chain) {
		return fault.ErrAlreadyInitialised
	}

	trx, err := x.store.Begin()
	if nil != err {
		return err
	}
	for _, e := range endowments {
		err := ledger.Deposit(trx, e.Account, e.Amount)
		if nil != err {
			trx.Abort()
			x.log.Errorf("genesis: account: %s  amount: %d  error: %s", e.Account, e.Amount, err)
			return err
		}
		x.log.Infof("genesis: account: %s  amount: %d", e.Account, e.Amount)
	}

	x.header.Set(blockheader.GenesisHeight, blockdigest.NewDigest([]byte(chainName)))
	x.header.Save(trx, x.store.Pool.Chain)
	return trx.Commit()
}

// Execute - run every call of a block in order
func (x *Executor) Execute(b *Block) (*Receipt, error) {
	previous, number := x.header.GetNew()
	if 0 != b.Number && number != b.Number {
		x.log.Errorf("block: %d  expected: %d", b.Number, number)
		return nil, fault.ErrInvalidBlockNumber
	}

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, number)
	record := make([]byte, 0, blockdigest.Length+len(n)+len(b.raw))
	record = append(record, previous[:]...)
	record = append(record, n...)
	record = append(record, b.raw...)
	digest := blockdigest.NewDigest(record)

	// the calls see the new height; restored if the block is not recorded
	x.header.Set(number, digest)
	x.random.Reseed(digest[:])
	x.events.SetHeight(number)

	x.log.Infof("block: %d  digest: %s  calls: %d", number, digest, len(b.Calls))

	results := make([]Result, 0, len(b.Calls))
	for i := range b.Calls {
		index := uint32(i)
		x.header.SetExtrinsic(index)
		results = append(results, x.apply(index, &b.Calls[i]))
	}
	x.header.ClearExtrinsic()

	trx, err := x.store.Begin()
	if nil != err {
		x.restore(number, previous)
		return nil, err
	}
	x.header.Save(trx, x.store.Pool.Chain)
	err = trx.Commit()
	if nil != err {
		x.restore(number, previous)
		return nil, err
	}

	return &Receipt{
		Number:  number,
		Digest:  digest,
		Results: results,
		Events:  x.events.Drain(),
	}, nil
}

// put back the header of the last recorded block
//
// calls that already committed are not undone
func (x *Executor) restore(number uint64, previous blockdigest.Digest) {
	x.header.Set(number-1, previous)
	events := x.events.Drain()
	x.log.Errorf("block: %d  not recorded  discarded events: %d", number, len(events))
}

// dispatch one call to the engine
func (x *Executor) apply(index uint32, c *Call) Result {
	result := Result{
		Index: index,
		Call:  c.Call,
	}

	err := c.validate()
	if nil == err {
		o := origin.SignedBy(c.Caller)
		switch c.Call {
		case CreateCall:
			id, e := x.engine.Create(o)
			if nil == e {
				result.KittyId = &id
			}
			err = e
		case SetPriceCall:
			err = x.engine.SetPrice(o, c.KittyId, c.Price)
		case TransferCall:
			err = x.engine.Transfer(o, c.To, c.KittyId)
		case BuyCall:
			err = x.engine.Buy(o, c.KittyId, *c.Price)
		case BreedCall:
			id, e := x.engine.Breed(o, c.Parent1, c.Parent2)
			if nil == e {
				result.KittyId = &id
			}
			err = e
		}
	}

	if nil != err {
		x.log.Debugf("call: %d  %s  error: %s", index, c.Call, err)
		result.Error = err.Error()
	}
	return result
}
