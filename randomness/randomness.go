// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package randomness - subject-keyed random bytes for state transitions
//
// the values must be reproducible by every node executing the same
// block so the seeded source only depends on the block digest and on
// the order of the requests made while executing that block
package randomness

import (
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/util"
)

// Source - produce random bytes for a subject
type Source interface {
	Random(subject []byte) []byte
}

// Seeded - deterministic source driven by a per-block seed
type Seeded struct {
	sync.Mutex
	seed  []byte
	count uint64
}

// NewSeeded - create a source from an initial seed
func NewSeeded(seed []byte) *Seeded {
	s := &Seeded{}
	s.Reseed(seed)
	return s
}

// Reseed - start a new sequence, called at the start of every block
func (s *Seeded) Reseed(seed []byte) {
	s.Lock()
	s.seed = append([]byte{}, seed...)
	s.count = 0
	s.Unlock()
}

// Random - SHA3-256(seed ++ varint(count) ++ subject)
//
// the count advances on every call so the same subject requested twice
// in one block yields different values
func (s *Seeded) Random(subject []byte) []byte {
	s.Lock()
	defer s.Unlock()

	buffer := make([]byte, 0, len(s.seed)+util.Varint64MaximumBytes+len(subject))
	buffer = append(buffer, s.seed...)
	buffer = util.AppendVarint64(buffer, s.count)
	buffer = append(buffer, subject...)
	s.count += 1

	digest := sha3.Sum256(buffer)
	return digest[:]
}

// Fixed - always return the same bytes, for tests
type Fixed []byte

// Random - ignore the subject
func (f Fixed) Random(subject []byte) []byte {
	return append([]byte{}, f...)
}
