// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"sync"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/blockheader"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/origin"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Configuration - fixed at start
type Configuration struct {
	MaximumOwned       int           `json:"maximumOwned"`
	Stake              uint64        `json:"stake"`
	IndexWidth         counter.Width `json:"indexWidth"`
	ExistentialDeposit uint64        `json:"existentialDeposit"`
}

// Currency - the part of the balance ledger used by the handlers
//
// all calls take part in the handler's storage transaction
type Currency interface {
	Reserve(storage.Transaction, account.Account, uint64) error
	Unreserve(storage.Transaction, account.Account, uint64) uint64
	FreeBalance(storage.Transaction, account.Account) uint64
	Transfer(storage.Transaction, account.Account, account.Account, uint64, balance.ExistenceRequirement) error
}

// Handles - collaborators of the engine
type Handles struct {
	Store    *storage.Store
	Verifier origin.Verifier
	Currency Currency
	Random   randomness.Source
	Context  blockheader.Context
	Events   messagebus.Sink
}

// Engine - applies kitty calls
type Engine struct {
	sync.Mutex

	log   *logger.L
	cfg   Configuration
	index *ownership.Index

	store    *storage.Store
	verifier origin.Verifier
	currency Currency
	random   randomness.Source
	context  blockheader.Context
	events   messagebus.Sink
}

var nextKey = []byte("next")

// New - create an engine
func New(cfg Configuration, handles Handles) (*Engine, error) {
	if cfg.MaximumOwned <= 0 {
		return nil, fault.ErrInvalidMaximumOwned
	}
	if !cfg.IndexWidth.Valid() {
		return nil, fault.ErrInvalidIndexWidth
	}
	if nil == handles.Store || nil == handles.Verifier || nil == handles.Currency ||
		nil == handles.Random || nil == handles.Context || nil == handles.Events {
		return nil, fault.ErrNotInitialised
	}

	log := logger.New("kitties")
	log.Infof("maximum owned: %d  stake: %d  index width: %d", cfg.MaximumOwned, cfg.Stake, cfg.IndexWidth)

	return &Engine{
		log:      log,
		cfg:      cfg,
		index:    ownership.New(handles.Store.Pool.KittiesOwned, cfg.MaximumOwned),
		store:    handles.Store,
		verifier: handles.Verifier,
		currency: handles.Currency,
		random:   handles.Random,
		context:  handles.Context,
		events:   handles.Events,
	}, nil
}

// run f inside a transaction, commit on success, abort otherwise
func (e *Engine) transact(f func(trx storage.Transaction) error) error {
	trx, err := e.store.Begin()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// log a failed call
func (e *Engine) reject(call string, caller account.Account, err error) error {
	e.log.Debugf("%s: caller: %s  rejected: %s", call, caller, err)
	return err
}
