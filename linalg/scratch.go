// SPDX-License-Identifier: MIT

package linalg

import (
	"sync"
	"sync/atomic"
)

// Scratch buffers (working copies, pivots, tau, singular values, packed complex data)
// are owned by exactly one call. Each call opens an arena and defers its release, so
// every exit path, including kernel failures, returns the buffers to the pools.

var (
	floatPool   = sync.Pool{New: func() any { return new([]float64) }}
	complexPool = sync.Pool{New: func() any { return new([]complex128) }}
	intPool     = sync.Pool{New: func() any { return new([]int) }}

	// liveScratch counts buffers handed out and not yet released.
	liveScratch atomic.Int64
)

type arena struct {
	fbufs []*[]float64
	cbufs []*[]complex128
	ibufs []*[]int
}

// float64s returns a zeroed buffer of length n.
func (a *arena) float64s(n int) []float64 {
	p := floatPool.Get().(*[]float64)
	if cap(*p) < n {
		*p = make([]float64, n)
	}
	*p = (*p)[:n]
	clear(*p)
	a.fbufs = append(a.fbufs, p)
	liveScratch.Add(1)
	return *p
}

// complex128s returns a zeroed buffer of length n.
func (a *arena) complex128s(n int) []complex128 {
	p := complexPool.Get().(*[]complex128)
	if cap(*p) < n {
		*p = make([]complex128, n)
	}
	*p = (*p)[:n]
	clear(*p)
	a.cbufs = append(a.cbufs, p)
	liveScratch.Add(1)
	return *p
}

// ints returns a zeroed buffer of length n.
func (a *arena) ints(n int) []int {
	p := intPool.Get().(*[]int)
	if cap(*p) < n {
		*p = make([]int, n)
	}
	*p = (*p)[:n]
	clear(*p)
	a.ibufs = append(a.ibufs, p)
	liveScratch.Add(1)
	return *p
}

// release returns every buffer to its pool. Buffers must not be used afterwards.
func (a *arena) release() {
	var i int
	for i = range a.fbufs {
		floatPool.Put(a.fbufs[i])
	}
	for i = range a.cbufs {
		complexPool.Put(a.cbufs[i])
	}
	for i = range a.ibufs {
		intPool.Put(a.ibufs[i])
	}
	liveScratch.Add(-int64(len(a.fbufs) + len(a.cbufs) + len(a.ibufs)))
	a.fbufs, a.cbufs, a.ibufs = nil, nil, nil
}
