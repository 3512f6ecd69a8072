// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction: a LevelDB batch plus a cache
// of the uncommitted values so that reads inside the transaction see
// its own writes.  Commit writes the batch atomically, Abort discards
// it, so a failed operation leaves the database untouched.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. kitty id     = big endian uint64 (8 bytes)
// 4. owner        = account bytes (variant ++ 32 byte public key)
// 5. varint       = see util.ToVarint64
//
// Kitties:
//
//   N ++ "next"                - next kitty id to allocate
//                                data: big endian uint64
//   K ++ kitty id              - kitty record
//                                data: packed kitty (see kitty.Pack)
//   O ++ owner                 - list of owned kitty ids
//                                data: varint count ++ varint ids
//
// Balances:
//
//   B ++ owner                 - account balance
//                                data: varint free ++ varint reserved
//
// Chain:
//
//   C ++ "height"              - last executed block number
//                                data: big endian uint64
//   C ++ "digest"              - digest of last executed block
//                                data: 32 bytes
package storage
