package frame

import (
	"bytes"
	"testing"
)

func TestMaskInvolution(t *testing.T) {
	key := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	lengths := []int{0, 1, 3, 4, 5, 7, 8, 9, 1000, 1<<16 + 3}

	for _, n := range lengths {
		original := bytes.Repeat([]byte{0x5A}, n)
		for i := range original {
			original[i] = byte(i)
		}

		buf := append([]byte{}, original...)
		unmaskInPlace(buf, key)
		unmaskInPlace(buf, key)

		if !bytes.Equal(buf, original) {
			t.Fatalf("length %d: double mask did not restore original", n)
		}
	}
}

func TestUnmaskInPlace_InvalidKeyLength(t *testing.T) {
	buf := []byte{1, 2, 3}
	unmaskInPlace(buf, []byte{1, 2}) // not 4 bytes, must be a no-op
	if !bytes.Equal(buf, []byte{1, 2, 3}) {
		t.Fatalf("unmaskInPlace mutated buffer with an invalid key length")
	}
}
