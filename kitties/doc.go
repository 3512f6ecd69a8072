// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitties - the state transitions of the kitty registry
//
// every handler verifies its origin, then checks all of its
// preconditions inside one storage transaction before making any
// change; the registry, the ownership index and the balance ledger
// are updated together and committed as a single batch.  An event is
// deposited only after the commit succeeds.
//
// Collateral: while a kitty exists the configured stake is reserved
// from its current owner's balance.
//
// State of a kitty:
//
//   unlisted --SetPrice(p)--> listed --SetPrice(nil)--> unlisted
//   listed --Transfer/Buy--> unlisted (new owner)
//   unlisted --Transfer--> unlisted (new owner)
package kitties
