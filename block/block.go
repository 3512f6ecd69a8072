// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

// call names
const (
	CreateCall   = "create"
	SetPriceCall = "set_price"
	TransferCall = "transfer"
	BuyCall      = "buy"
	BreedCall    = "breed"
)

// Call - one extrinsic
type Call struct {
	Caller  account.Account `json:"caller"`
	Call    string          `json:"call"`
	KittyId uint64          `json:"kitty_id"`
	Price   *uint64         `json:"price"`
	To      account.Account `json:"to"`
	Parent1 uint64          `json:"parent1"`
	Parent2 uint64          `json:"parent2"`
}

// Block - calls to execute at one height
type Block struct {
	Number uint64 `json:"number"`
	Calls  []Call `json:"calls"`

	raw []byte
}

// Parse - decode a block, the raw bytes are kept for the digest
func Parse(raw []byte) (*Block, error) {
	b := &Block{}
	err := json.Unmarshal(raw, b)
	if nil != err {
		return nil, err
	}
	b.raw = append([]byte{}, raw...)
	return b, nil
}

// ReadFile - load a block file
func ReadFile(fileName string) (*Block, error) {
	raw, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return Parse(raw)
}

// check required fields
func (c *Call) validate() error {
	switch c.Call {
	case CreateCall, SetPriceCall, TransferCall, BreedCall:
		return nil
	case BuyCall:
		if nil == c.Price {
			return fault.ErrInvalidCall
		}
		return nil
	default:
		return fault.ErrInvalidCall
	}
}
