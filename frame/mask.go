// Package frame
// Author: momentics <momentics@gmail.com>
//
// Mask: the frame payload's XOR mask/unmask entry point.

package frame

import "github.com/momentics/wscodec/internal/xorword"

// unmaskInPlace XORs payload with the repeating 4-byte key (spec §4.5).
// The same function masks an outbound payload on construction — XOR is
// its own inverse.
func unmaskInPlace(payload, key []byte) {
	if len(key) != 4 {
		return
	}
	var k [4]byte
	copy(k[:], key)
	xorword.Mask(payload, k)
}
