// Package fake
// Author: momentics <momentics@gmail.com>
//
// RNG: a deterministic, cycling api.RNG double.

package fake

// RNG is a deterministic api.RNG: it cycles through a fixed sequence
// instead of drawing from crypto/rand, so tests can assert on an exact
// masking key (spec §9: inject a capability with a cryptographic
// default so tests can inject deterministic sequences).
type RNG struct {
	Sequence []byte
	pos      int
}

// NewRNG constructs an RNG that cycles through seq.
func NewRNG(seq []byte) *RNG {
	return &RNG{Sequence: seq}
}

// Fill implements api.RNG by copying from the fixed sequence, wrapping
// around if dst is longer than Sequence.
func (r *RNG) Fill(dst []byte) {
	if len(r.Sequence) == 0 {
		return
	}
	for i := range dst {
		dst[i] = r.Sequence[r.pos%len(r.Sequence)]
		r.pos++
	}
}
