// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/fault"
)

// miscellaneous constants
const (
	PublicKeyLength = ed25519.PublicKeySize
	checksumLength  = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
	ed25519Code    = 1 // the only supported algorithm

	// variant byte ++ public key
	encodedLength = 1 + PublicKeyLength
)

// Account - an ed25519 public key identifying an owner
//
// the structure is comparable so it can be used as a map key
type Account struct {
	Test      bool
	PublicKey [PublicKeyLength]byte
}

// FromPublicKey - create an account from a raw ed25519 public key
func FromPublicKey(publicKey []byte, test bool) (Account, error) {
	if PublicKeyLength != len(publicKey) {
		return Account{}, fault.ErrInvalidKeyLength
	}
	a := Account{
		Test: test,
	}
	copy(a.PublicKey[:], publicKey)
	return a, nil
}

// FromBytes - decode the stored byte form: variant ++ public key
func FromBytes(buffer []byte) (Account, error) {
	if encodedLength != len(buffer) {
		return Account{}, fault.ErrInvalidKeyLength
	}
	keyVariant := buffer[0]
	if keyVariant&publicKeyCode != publicKeyCode || ed25519Code != keyVariant>>algorithmShift {
		return Account{}, fault.ErrInvalidKeyType
	}
	return FromPublicKey(buffer[1:], 0 != keyVariant&testKeyCode)
}

// FromBase58 - decode the text form: base58(variant ++ public key ++ checksum)
func FromBase58(s string) (Account, error) {
	decoded, err := base58.Decode(s)
	if nil != err || len(decoded) <= checksumLength {
		return Account{}, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return Account{}, fault.ErrChecksumMismatch
	}
	return FromBytes(decoded[:checksumStart])
}

// Bytes - byte slice for encoded key, used as the database key
func (account Account) Bytes() []byte {
	keyVariant := byte(ed25519Code<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// IsZero - true for the default value
func (account Account) IsZero() bool {
	return account.PublicKey == [PublicKeyLength]byte{}
}

// String - base58 encoding of encoded key
func (account Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (account Account) GoString() string {
	return "<account:" + hex.EncodeToString(account.PublicKey[:]) + ">"
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}
