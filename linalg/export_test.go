// SPDX-License-Identifier: MIT

package linalg

// LiveScratch reports how many scratch buffers are currently checked out.
func LiveScratch() int64 { return liveScratch.Load() }
