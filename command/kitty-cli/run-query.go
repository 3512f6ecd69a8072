// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/blockdigest"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
)

type ownedReply struct {
	Account account.Account `json:"account"`
	Kitties []uint64        `json:"kitties"`
}

type balanceReply struct {
	Account            account.Account `json:"account"`
	Free               uint64          `json:"free"`
	Reserved           uint64          `json:"reserved"`
	ExistentialDeposit uint64          `json:"existentialDeposit"`
}

type checkReply struct {
	NextKittyId uint64 `json:"nextKittyId"`
	Consistent  bool   `json:"consistent"`
}

type infoReply struct {
	Chain         string                `json:"chain"`
	Height        uint64                `json:"height"`
	Digest        blockdigest.Digest    `json:"digest"`
	NextKittyId   uint64                `json:"nextKittyId"`
	Configuration kitties.Configuration `json:"configuration"`
}

func runKitty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("id") {
		return fmt.Errorf("kitty id is required")
	}
	id := c.Uint64("id")

	k, err := m.engine.Kitty(id)
	if nil != err {
		return err
	}

	return printJson(m.w, kitties.Entry{
		Id:    id,
		Kitty: *k,
	})
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start := c.Uint64("start")
	count := c.Int("count")
	if m.verbose {
		fmt.Fprintf(m.e, "start: %d  count: %d\n", start, count)
	}

	entries, err := m.engine.List(start, count)
	if nil != err {
		return err
	}
	return printJson(m.w, entries)
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	err := m.engine.Check()
	if nil != err {
		return err
	}
	return printJson(m.w, checkReply{
		NextKittyId: m.engine.LastKittyId(),
		Consistent:  true,
	})
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := accountFromFlag(c, m)
	if nil != err {
		return err
	}

	return printJson(m.w, ownedReply{
		Account: owner,
		Kitties: m.engine.KittiesOwned(owner),
	})
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := accountFromFlag(c, m)
	if nil != err {
		return err
	}

	return printJson(m.w, balanceReply{
		Account:            a,
		Free:               m.ledger.FreeBalance(nil, a),
		Reserved:           m.ledger.ReservedBalance(nil, a),
		ExistentialDeposit: m.ledger.ExistentialDeposit(),
	})
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	height, digest := m.header.Get()
	return printJson(m.w, infoReply{
		Chain:         m.config.Chain,
		Height:        height,
		Digest:        digest,
		NextKittyId:   m.engine.LastKittyId(),
		Configuration: m.engine.Configuration(),
	})
}

// decode the account flag and check its network
func accountFromFlag(c *cli.Context, m *metadata) (account.Account, error) {
	s := c.String("account")
	if "" == s {
		return account.Account{}, fmt.Errorf("account is required")
	}

	a, err := account.FromBase58(s)
	if nil != err {
		return account.Account{}, err
	}
	if a.Test != m.testnet {
		return account.Account{}, fault.ErrWrongNetworkForAccount
	}
	if m.verbose {
		fmt.Fprintf(m.e, "account: %#v\n", a)
	}
	return a, nil
}
