// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the last value of the file must be a table, e.g.
//
//   local M = {}
//   M.data_directory = "."
//   M.chain = "testing"
//   M.kitties = {
//       maximum_owned = 100,
//       stake = 5000,
//       index_width = 32,
//   }
//   M.balances = {
//       existential_deposit = 500,
//       endowments = {
//           { account = "<base58 account>", amount = 1000000 },
//       },
//   }
//   return M
package configuration
