// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package origin - who dispatched a call
package origin

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

// Kind - the type of origin
type Kind int

// possible kinds
const (
	None Kind = iota
	Root
	Signed
)

// Origin - the caller of a state transition
type Origin struct {
	Kind    Kind
	Account account.Account
}

// Verifier - convert an origin to the signing account
type Verifier interface {
	Verify(Origin) (account.Account, error)
}

// SignedBy - origin for a call signed by an account
func SignedBy(a account.Account) Origin {
	return Origin{
		Kind:    Signed,
		Account: a,
	}
}

// String - for logging
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Root:
		return "root"
	case Signed:
		return "signed"
	default:
		return "unknown"
	}
}

// SignedVerifier - accepts only signed origins
//
// signatures are checked by the host before a call reaches the engine
type SignedVerifier struct{}

// Verify - return the signer or ErrBadOrigin
func (SignedVerifier) Verify(o Origin) (account.Account, error) {
	if Signed != o.Kind || o.Account.IsZero() {
		return account.Account{}, fault.ErrBadOrigin
	}
	return o.Account, nil
}
