// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// Sink - accepts events
type Sink interface {
	Deposit(Event)
}

// Message - a queued event and the block that produced it
type Message struct {
	Height uint64
	Item   Event
}

// Queue - unbounded in-order event queue
type Queue struct {
	sync.Mutex
	height uint64
	items  []Message
}

// New - an empty queue
func New() *Queue {
	return &Queue{}
}

// SetHeight - the block height attached to subsequent events
func (q *Queue) SetHeight(height uint64) {
	q.Lock()
	q.height = height
	q.Unlock()
}

// Deposit - append an event
func (q *Queue) Deposit(item Event) {
	q.Lock()
	q.items = append(q.items, Message{
		Height: q.height,
		Item:   item,
	})
	q.Unlock()
}

// Len - number of queued events
func (q *Queue) Len() int {
	q.Lock()
	defer q.Unlock()
	return len(q.items)
}

// Drain - remove and return all queued events
func (q *Queue) Drain() []Message {
	q.Lock()
	defer q.Unlock()

	items := q.items
	q.items = nil
	return items
}
