// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queue of the events emitted by state transitions
//
// events are appended after a successful commit, in execution order,
// and drained by the block executor once a block has completed
package messagebus
