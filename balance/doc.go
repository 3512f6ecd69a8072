// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - free and reserved balances of accounts
//
// from storage/doc.go:
//
//   Balances  account - varint free ++ varint reserved
//
// an account exists while its total (free + reserved) is non-zero; a
// new account must be opened with at least the existential deposit and
// a transfer that allows death removes an account with nothing reserved
// whose total falls below it, the remaining dust is destroyed
package balance
