// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/kittyd/account"
)

// Event - anything deposited by a handler
type Event interface {
	Name() string
}

// Created - a kitty was minted
type Created struct {
	Owner   account.Account `json:"owner"`
	KittyId uint64          `json:"kittyId"`
}

// PriceSet - an asking price was set, nil means not for sale
type PriceSet struct {
	Owner   account.Account `json:"owner"`
	KittyId uint64          `json:"kittyId"`
	Price   *uint64         `json:"price"`
}

// Transferred - ownership was given away
type Transferred struct {
	From    account.Account `json:"from"`
	To      account.Account `json:"to"`
	KittyId uint64          `json:"kittyId"`
}

// Bought - a listed kitty was sold
type Bought struct {
	Buyer   account.Account `json:"buyer"`
	Seller  account.Account `json:"seller"`
	KittyId uint64          `json:"kittyId"`
	Price   uint64          `json:"price"`
}

// Bred - a kitty was minted from two parents
type Bred struct {
	Owner   account.Account `json:"owner"`
	KittyId uint64          `json:"kittyId"`
	Parent1 uint64          `json:"parent1"`
	Parent2 uint64          `json:"parent2"`
}

// Name - event names
func (Created) Name() string     { return "Created" }
func (PriceSet) Name() string    { return "PriceSet" }
func (Transferred) Name() string { return "Transferred" }
func (Bought) Name() string      { return "Bought" }
func (Bred) Name() string        { return "Bred" }
