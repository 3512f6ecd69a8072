// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/kittyd/blockheader"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/logger"
)

// randomness subjects
var (
	dnaSubject    = []byte("dna")
	genderSubject = []byte("gender")
)

// GenerateDNA - blake2b-128(random("dna") ++ LE32(extrinsic index) ++ LE64(block height))
//
// the extrinsic index is zero when no call is executing
func GenerateDNA(source randomness.Source, context blockheader.Context) DNA {
	h, err := blake2b.New(DNALength, nil)
	logger.PanicIfError("kitty: blake2b", err)

	h.Write(source.Random(dnaSubject))

	index, _ := context.ExtrinsicIndex()
	buffer := make([]byte, 4+8)
	binary.LittleEndian.PutUint32(buffer[:4], index)
	binary.LittleEndian.PutUint64(buffer[4:], context.Height())
	h.Write(buffer)

	dna := DNA{}
	copy(dna[:], h.Sum(nil))
	return dna
}

// GenerateGender - even first random byte is male
func GenerateGender(source randomness.Source) Gender {
	r := source.Random(genderSubject)
	if 0 == len(r) || 0 == r[0]%2 {
		return Male
	}
	return Female
}

// Crossover - each bit comes from parent1 where the mask is set and from parent2 elsewhere
func Crossover(mask DNA, parent1 DNA, parent2 DNA) DNA {
	result := DNA{}
	for i := 0; i < DNALength; i += 1 {
		result[i] = (mask[i] & parent1[i]) | (^mask[i] & parent2[i])
	}
	return result
}
