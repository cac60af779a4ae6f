// SPDX-License-Identifier: MIT

//go:build !linux

package matrix

import "crypto/rand"

func platformEntropy(b []byte) error {
	_, err := rand.Read(b)
	return err
}
