// Package xorword applies the WebSocket masking XOR to a byte slice,
// choosing an 8-byte-at-a-time word loop on platforms with fast
// unaligned 64-bit loads and falling back to a byte-at-a-time loop
// everywhere else.
// Author: momentics <momentics@gmail.com>
//
// The feature check mirrors internal/concurrency/scheduler.go's use of
// golang.org/x/sys/cpu for prefetch hints in the donor repo this
// package is adapted from: both exist to keep a hot per-byte loop off
// the slow path on hardware that can do better.
package xorword

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// fastUnalignedWords is true on architectures where an unaligned
// 64-bit load/store is not meaningfully slower than a byte loop, so
// the word-at-a-time path is worth the extra bookkeeping.
var fastUnalignedWords = cpu.X86.HasSSE2 || cpu.ARM64.HasATOMICS

// Mask XORs buf in place with key, repeating key every 4 bytes
// (RFC 6455 §5.3). Masking and unmasking are the same operation.
func Mask(buf []byte, key [4]byte) {
	if len(buf) >= 8 && fastUnalignedWords {
		maskWords(buf, key)
		return
	}
	maskBytes(buf, key)
}

func maskBytes(buf []byte, key [4]byte) {
	for i := range buf {
		buf[i] ^= key[i%4]
	}
}

// maskWords XORs 8 bytes at a time using a 64-bit key word built by
// repeating the 4-byte key twice, then finishes any remaining tail
// bytes one at a time. The key repeats every 4 bytes and every word
// starts at a multiple of 8, so an 8-byte word built from two copies of
// the key lines up with the cycle (buf[0] always takes key[0]).
func maskWords(buf []byte, key [4]byte) {
	var rep [8]byte
	copy(rep[:4], key[:])
	copy(rep[4:], key[:])
	keyWord := binary.LittleEndian.Uint64(rep[:])

	n := len(buf)
	words := n / 8
	for i := 0; i < words; i++ {
		off := i * 8
		v := binary.LittleEndian.Uint64(buf[off : off+8])
		binary.LittleEndian.PutUint64(buf[off:off+8], v^keyWord)
	}
	for i := words * 8; i < n; i++ {
		buf[i] ^= key[i%4]
	}
}
