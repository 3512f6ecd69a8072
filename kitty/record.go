// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty - the kitty record and its genetics
//
// from storage/doc.go:
//
//   Kitties  BE64(id) - packed kitty record
//
// a record is never deleted; only the price and the owner change after
// it is minted
package kitty

import (
	"encoding/hex"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/util"
)

// DNALength - bytes of genetic data
const DNALength = 16

// DNA - immutable genetic data of a kitty
type DNA [DNALength]byte

// Gender - fixed when the kitty is minted
type Gender byte

// genders
const (
	Male   Gender = 0
	Female Gender = 1
)

// TagType - type of a packed record
type TagType uint64

// record tags
const (
	KittyTag TagType = 1
)

// Kitty - the stored record
type Kitty struct {
	DNA    DNA             `json:"dna"`
	Gender Gender          `json:"gender"`
	Price  *uint64         `json:"price"`
	Owner  account.Account `json:"owner"`
}

// Packed - byte form of a record
type Packed []byte

// ForSale - true if the kitty has an asking price
func (k *Kitty) ForSale() bool {
	return nil != k.Price
}

// String - hex for the fmt package (for %s)
func (dna DNA) String() string {
	return hex.EncodeToString(dna[:])
}

// MarshalText - convert DNA to hex text
func (dna DNA) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DNALength))
	hex.Encode(buffer, dna[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into DNA
func (dna *DNA) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DNALength) != len(s) {
		return fault.ErrInvalidDNA
	}
	_, err := hex.Decode(dna[:], s)
	return err
}

// String - for logging and JSON
func (g Gender) String() string {
	if Male == g {
		return "male"
	}
	return "female"
}

// MarshalText - gender as text
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Pack - varint(tag) ++ dna ++ gender ++ price flag ++ [varint price] ++ varint(len) ++ owner
func (k *Kitty) Pack() Packed {
	buffer := util.ToVarint64(uint64(KittyTag))
	buffer = append(buffer, k.DNA[:]...)
	buffer = append(buffer, byte(k.Gender))
	if nil == k.Price {
		buffer = append(buffer, 0)
	} else {
		buffer = append(buffer, 1)
		buffer = util.AppendVarint64(buffer, *k.Price)
	}
	owner := k.Owner.Bytes()
	buffer = util.AppendVarint64(buffer, uint64(len(owner)))
	return append(buffer, owner...)
}

// Unpack - decode a packed record
func (record Packed) Unpack() (*Kitty, error) {
	tag, n := util.FromVarint64(record)
	if 0 == n {
		return nil, fault.ErrUnpackedRecordTruncated
	}
	if KittyTag != TagType(tag) {
		return nil, fault.ErrUnknownRecordTag
	}

	// dna, gender and price flag
	if len(record) < n+DNALength+2 {
		return nil, fault.ErrUnpackedRecordTruncated
	}
	k := &Kitty{}
	copy(k.DNA[:], record[n:n+DNALength])
	n += DNALength

	k.Gender = Gender(record[n])
	if Male != k.Gender && Female != k.Gender {
		return nil, fault.ErrInvalidGender
	}
	n += 1

	hasPrice := record[n]
	n += 1
	switch hasPrice {
	case 0:
	case 1:
		price, priceLength := util.FromVarint64(record[n:])
		if 0 == priceLength {
			return nil, fault.ErrUnpackedRecordTruncated
		}
		n += priceLength
		k.Price = &price
	default:
		return nil, fault.ErrUnpackedRecordTruncated
	}

	// owner
	ownerLength, ownerOffset := util.FromVarint64(record[n:])
	if 0 == ownerOffset {
		return nil, fault.ErrUnpackedRecordTruncated
	}
	n += ownerOffset
	if uint64(len(record)-n) != ownerLength {
		return nil, fault.ErrUnpackedRecordTruncated
	}
	owner, err := account.FromBytes(record[n:])
	if nil != err {
		return nil, err
	}
	k.Owner = owner

	return k, nil
}
