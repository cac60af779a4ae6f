// SPDX-License-Identifier: MIT

package matrix

import "time"

// SetEntropyReader swaps the entropy reader and wall clock; the returned func restores both.
func SetEntropyReader(read func([]byte) error, clock func() time.Time) (restore func()) {
	prevRead, prevClock := entropyRead, wallClock
	entropyRead, wallClock = read, clock
	return func() { entropyRead, wallClock = prevRead, prevClock }
}

// EntropySeed exposes the seed derivation used by NewEntropySource.
var EntropySeed = entropySeed

// ResetPackageSource drops the shared source so the next nil fill seeds it again.
func ResetPackageSource() {
	packageSource.mu.Lock()
	packageSource.rnd = nil
	packageSource.mu.Unlock()
}
