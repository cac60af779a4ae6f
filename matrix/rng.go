// SPDX-License-Identifier: MIT

// Package matrix - random fill sources.
//
// Random fills take an explicit RandSource handle instead of touching a global generator.
//
// Goals:
//   - Reproducibility on demand: NewSeededSource(seed) gives identical fills across runs.
//   - Fresh streams by default: NewEntropySource seeds once from the OS entropy pool
//     and falls back to the wall clock when the pool cannot be read.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share a source across goroutines.
//   - A nil RandSource selects the package source: seeded once from the entropy pool on
//     first use, then reused by every later nil fill. Its draws are serialized.
//   - Values are uniform in [0,1); this is not a cryptographic generator.
package matrix

import (
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// RandSource yields uniform values in [0,1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// entropyRead fills b from the platform entropy source (getrandom(2) on Linux).
// It is a variable so tests can simulate an unavailable pool.
var entropyRead = platformEntropy

// wallClock is the fallback seed source.
var wallClock = time.Now

// NewSeededSource returns a deterministic source.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewSeededSource(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// NewEntropySource returns a source seeded once from the system entropy pool.
// When the pool is unavailable the seed is the current wall-clock time in nanoseconds.
//
// Complexity: O(1), one 8-byte entropy read.
func NewEntropySource() *rand.Rand {
	return rand.New(rand.NewSource(entropySeed()))
}

func entropySeed() int64 {
	var buf [8]byte
	if err := entropyRead(buf[:]); err != nil {
		return wallClock().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// sharedSource is the source behind nil RandSource arguments.
type sharedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *sharedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rnd == nil {
		s.rnd = NewEntropySource()
	}
	return s.rnd.Float64()
}

var packageSource = &sharedSource{}

func fillRandom(dst []float64, src RandSource) {
	if len(dst) == 0 {
		return
	}
	if src == nil {
		src = packageSource
	}
	var i int
	for i = range dst {
		dst[i] = src.Float64()
	}
}

func fillComplexRandom(dst []Complex, src RandSource) {
	if len(dst) == 0 {
		return
	}
	if src == nil {
		src = packageSource
	}
	var i int
	for i = range dst {
		dst[i].Re = src.Float64()
		dst[i].Im = src.Float64()
	}
}
