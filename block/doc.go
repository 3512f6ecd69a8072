// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block - execute blocks of kitty calls in order
//
// a block file is JSON:
//
//   {
//     "number": 1,
//     "calls": [
//       { "caller": "<account>", "call": "create" },
//       { "caller": "<account>", "call": "set_price", "kitty_id": 0, "price": 50 },
//       { "caller": "<account>", "call": "transfer", "kitty_id": 0, "to": "<account>" },
//       { "caller": "<account>", "call": "buy", "kitty_id": 0, "price": 50 },
//       { "caller": "<account>", "call": "breed", "parent1": 0, "parent2": 1 }
//     ]
//   }
//
// the number is optional, when present it must be the next height.
// The block digest is SHA3-256(previous digest ++ BE64(number) ++
// file bytes) and seeds the randomness for every call in the block.
// A failing call is reported and skipped; the block still completes.
package block
