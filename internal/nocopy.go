// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package internal

import (
	"reflect"
	"sync/atomic"
)

// NoCopy detects copies of the containing struct after first use.
type NoCopy[T any] struct {
	addr atomic.Pointer[NoCopy[T]] // of receiver, to detect copies by value
}

// Check panics if the receiver is not the value it was first checked at.
func (c *NoCopy[T]) Check() {
	if c.addr.CompareAndSwap(nil, c) {
		return
	}

	if c.addr.Load() != c {
		panic("illegal use of non-zero " + reflect.TypeFor[T]().Name() + " copied by value")
	}
}
