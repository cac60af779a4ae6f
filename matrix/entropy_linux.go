// SPDX-License-Identifier: MIT

//go:build linux

package matrix

import (
	"errors"

	"golang.org/x/sys/unix"
)

var errShortEntropy = errors.New("matrix: short entropy read")

// platformEntropy reads from the kernel pool without blocking on an uninitialized pool.
func platformEntropy(b []byte) error {
	n, err := unix.Getrandom(b, unix.GRND_NONBLOCK)
	if err != nil {
		return err
	}
	if n != len(b) {
		return errShortEntropy
	}
	return nil
}
