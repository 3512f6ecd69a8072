// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/kittyd/util"
	"github.com/bitmark-inc/logger"
)

// ExistenceRequirement - may a transfer remove the sending account
type ExistenceRequirement int

// existence requirements
const (
	KeepAlive ExistenceRequirement = iota
	AllowDeath
)

// Ledger - balances held in a pool
type Ledger struct {
	pool               *storage.PoolHandle
	existentialDeposit uint64
}

type record struct {
	free     uint64
	reserved uint64
}

// New - ledger over a pool
func New(pool *storage.PoolHandle, existentialDeposit uint64) *Ledger {
	return &Ledger{
		pool:               pool,
		existentialDeposit: existentialDeposit,
	}
}

// ExistentialDeposit - minimum total of a live account
func (l *Ledger) ExistentialDeposit() uint64 {
	return l.existentialDeposit
}

// a nil trx reads the committed data
func (l *Ledger) get(trx storage.Transaction, a account.Account) record {
	var packed []byte
	if nil == trx {
		packed = l.pool.Get(a.Bytes())
	} else {
		packed = trx.Get(l.pool, a.Bytes())
	}
	if nil == packed {
		return record{}
	}

	free, n := util.FromVarint64(packed)
	if 0 == n {
		logger.Panicf("balance: account: %s  corrupt free balance: %x", a, packed)
	}
	reserved, m := util.FromVarint64(packed[n:])
	if 0 == m || n+m != len(packed) {
		logger.Panicf("balance: account: %s  corrupt reserved balance: %x", a, packed)
	}
	return record{
		free:     free,
		reserved: reserved,
	}
}

func (l *Ledger) put(trx storage.Transaction, a account.Account, r record) {
	if 0 == r.free && 0 == r.reserved {
		trx.Delete(l.pool, a.Bytes())
		return
	}
	packed := util.ToVarint64(r.free)
	packed = util.AppendVarint64(packed, r.reserved)
	trx.Put(l.pool, a.Bytes(), packed)
}

// FreeBalance - the spendable balance
func (l *Ledger) FreeBalance(trx storage.Transaction, a account.Account) uint64 {
	return l.get(trx, a).free
}

// ReservedBalance - the balance held as collateral
func (l *Ledger) ReservedBalance(trx storage.Transaction, a account.Account) uint64 {
	return l.get(trx, a).reserved
}

// TotalBalance - free + reserved
func (l *Ledger) TotalBalance(trx storage.Transaction, a account.Account) uint64 {
	r := l.get(trx, a)
	return r.free + r.reserved
}

// Deposit - create funds in an account, used for genesis endowment
func (l *Ledger) Deposit(trx storage.Transaction, a account.Account, amount uint64) error {
	if 0 == amount {
		return nil
	}
	r := l.get(trx, a)
	if 0 == r.free+r.reserved && amount < l.existentialDeposit {
		return fault.ErrExistentialDeposit
	}
	if r.free+amount < r.free || r.free+amount+r.reserved < r.reserved {
		return fault.ErrBalanceOverflow
	}
	r.free += amount
	l.put(trx, a, r)
	return nil
}

// Reserve - move an amount from free to reserved
func (l *Ledger) Reserve(trx storage.Transaction, a account.Account, amount uint64) error {
	if 0 == amount {
		return nil
	}
	r := l.get(trx, a)
	if r.free < amount {
		return fault.ErrInsufficientBalance
	}
	r.free -= amount
	r.reserved += amount
	l.put(trx, a, r)
	return nil
}

// Unreserve - move up to amount from reserved back to free
// returns: the part of amount that was not reserved
func (l *Ledger) Unreserve(trx storage.Transaction, a account.Account, amount uint64) uint64 {
	if 0 == amount {
		return 0
	}
	r := l.get(trx, a)
	actual := amount
	if r.reserved < actual {
		actual = r.reserved
	}
	r.reserved -= actual
	r.free += actual
	l.put(trx, a, r)
	return amount - actual
}

// Transfer - move free balance between accounts
func (l *Ledger) Transfer(trx storage.Transaction, from account.Account, to account.Account, amount uint64, requirement ExistenceRequirement) error {
	if 0 == amount || from == to {
		return nil
	}

	sender := l.get(trx, from)
	if sender.free < amount {
		return fault.ErrInsufficientBalance
	}
	sender.free -= amount

	reaped := false
	if sender.free+sender.reserved < l.existentialDeposit {
		if KeepAlive == requirement {
			return fault.ErrKeepAlive
		}
		reaped = 0 == sender.reserved
	}

	recipient := l.get(trx, to)
	if 0 == recipient.free+recipient.reserved && amount < l.existentialDeposit {
		return fault.ErrExistentialDeposit
	}
	if recipient.free+amount < recipient.free || recipient.free+amount+recipient.reserved < recipient.reserved {
		return fault.ErrBalanceOverflow
	}
	recipient.free += amount

	if reaped {
		sender = record{}
	}
	l.put(trx, from, sender)
	l.put(trx, to, recipient)
	return nil
}
