// Package frame
// Author: momentics <momentics@gmail.com>
//
// Length: extended-length field width, decode, and encode.

package frame

import "encoding/binary"

// extLenWidth returns the number of extended-length bytes that follow
// the 7-bit payload-length field: 0, 2, or 8 (spec §4.2).
func extLenWidth(payloadLen7 byte) int {
	switch payloadLen7 {
	case 126:
		return 2
	case 127:
		return 8
	default:
		return 0
	}
}

// decodeExtLen interprets raw as an unsigned big-endian integer; raw
// must be exactly 0, 2, or 8 bytes (spec §4.2 does not require
// rejecting non-minimal encodings — that policy decision is left to the
// caller).
func decodeExtLen(raw []byte) uint64 {
	switch len(raw) {
	case 2:
		return uint64(binary.BigEndian.Uint16(raw))
	case 8:
		return binary.BigEndian.Uint64(raw)
	default:
		return 0
	}
}

// splitPayloadLength computes the on-wire (payloadLen7, extLen) pair
// for an outbound payload of length n, using the three-way split spec
// §4.7 step 3 specifies: <126, <2^16 (2-byte big-endian), else 8-byte
// big-endian.
func splitPayloadLength(n uint64) (payloadLen7 byte, extLen []byte) {
	switch {
	case n < 126:
		return byte(n), nil
	case n <= 0xFFFF:
		buf := make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(n))
		return 126, buf
	default:
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, n)
		return 127, buf
	}
}
