// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
)

type keyPair struct {
	Account    account.Account `json:"account"`
	PublicKey  string          `json:"public_key"`
	PrivateKey string          `json:"private_key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	kp, err := makeKeyPair(c.Bool("testnet"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %#v\n", kp.Account)
	}

	return printJson(m.w, kp)
}

// create a new ed25519 key pair
func makeKeyPair(test bool) (*keyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}

	a, err := account.FromPublicKey(publicKey, test)
	if nil != err {
		return nil, err
	}

	return &keyPair{
		Account:    a,
		PublicKey:  hex.EncodeToString(publicKey),
		PrivateKey: hex.EncodeToString(privateKey),
	}, nil
}
