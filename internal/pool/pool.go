// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool provides size stratified pools of line buffers.
package pool

import (
	"math/bits"
	"sync"
)

// maxClass is the largest pooled buffer class; buffers in
// class i have a capacity of at least 1<<i.
const maxClass = 31

var pool [maxClass + 1]sync.Pool

func init() {
	for i := range pool {
		c := 1 << uint(i)
		pool[i].New = func() interface{} {
			b := make([]byte, 0, c)
			return &b
		}
	}
}

// GetBuffer returns a pointer to an empty []byte with a capacity of at
// least size. The buffer should be returned with PutBuffer when it is
// no longer referenced.
func GetBuffer(size int) *[]byte {
	if size <= 0 {
		size = 1
	}
	class := classFor(uint(size))
	if class > maxClass {
		b := make([]byte, 0, size)
		return &b
	}
	return pool[class].Get().(*[]byte)
}

// PutBuffer replaces a used buffer into the pool for its capacity.
func PutBuffer(buf *[]byte) {
	if buf == nil || cap(*buf) == 0 {
		return
	}
	class := bits.Len(uint(cap(*buf))) - 1
	if class > maxClass {
		return
	}
	*buf = (*buf)[:0]
	pool[class].Put(buf)
}

// classFor returns the ceiling of base 2 log of size, the index of the
// smallest class holding buffers able to take size bytes.
func classFor(size uint) int {
	return bits.Len(size - 1)
}
