// Package frame
// Author: momentics <momentics@gmail.com>
//
// Frame: the decoded-or-about-to-be-encoded WebSocket frame type and
// its invariant checks.

package frame

import (
	"github.com/momentics/wscodec/api"
)

// Frame is the only persistent entity this package deals in: a decoded
// or about-to-be-encoded WebSocket frame (spec §3).
//
// A Frame exclusively owns ExtLen, MaskKey, and Payload. The byte
// source a Reader parses one from is borrowed only for the duration of
// that single read.
type Frame struct {
	Fin  FinBit
	Rsv1 ReservedBit
	Rsv2 ReservedBit
	Rsv3 ReservedBit

	Opcode Opcode
	Masked MaskBit

	// PayloadLen7 is the 7-bit length field exactly as it appears on
	// the wire: <126 is the exact length, 126/127 signal a following
	// 16/64-bit extended length.
	PayloadLen7 byte

	// ExtLen holds the 0, 2, or 8 extended-length bytes, big-endian.
	ExtLen []byte

	// MaskKey holds the 4 masking-key bytes, or is empty when Masked
	// is Unmasked.
	MaskKey []byte

	// Payload holds the raw application bytes — masked in flight,
	// unmasked after Unmask().
	Payload []byte
}

// ExactPayloadLength returns the real payload length, combining
// PayloadLen7 with ExtLen per spec §3/§4.2.
func (f *Frame) ExactPayloadLength() uint64 {
	switch len(f.ExtLen) {
	case 2:
		return uint64(f.ExtLen[0])<<8 | uint64(f.ExtLen[1])
	case 8:
		var v uint64
		for _, b := range f.ExtLen {
			v = v<<8 | uint64(b)
		}
		return v
	default:
		return uint64(f.PayloadLen7)
	}
}

// WireLen returns the total on-wire length of the frame: the 2 header
// bytes plus extended length, masking key, and payload (spec §3
// "frame_length", §8 property 4).
func (f *Frame) WireLen() int {
	return 2 + len(f.ExtLen) + len(f.MaskKey) + len(f.Payload)
}

// Validate checks every invariant spec §3 requires of a constructed or
// parsed Frame, returning the first violation found.
func (f *Frame) Validate() *api.Error {
	if !f.Opcode.IsSupported() {
		return api.NewProtocolError("unsupported opcode").WithContext("opcode", uint8(f.Opcode))
	}

	if f.Opcode.IsControl() {
		if f.Fin != Final {
			return api.NewProtocolError("control frame must not be fragmented")
		}
		if f.ExactPayloadLength() > MaxControlPayloadLen {
			return api.NewProtocolError("control frame payload exceeds 125 bytes").
				WithContext("length", f.ExactPayloadLength())
		}
	}

	if f.Rsv1 == On && !f.Opcode.AllowsRSV1() {
		return api.NewProtocolError("RSV1 set on an opcode other than Text or Binary")
	}

	switch {
	case f.PayloadLen7 < 126:
		if len(f.ExtLen) != 0 {
			return api.NewProtocolError("extended length present for short payload length")
		}
	case f.PayloadLen7 == 126:
		if len(f.ExtLen) != 2 {
			return api.NewProtocolError("expected 2-byte extended length")
		}
	case f.PayloadLen7 == 127:
		if len(f.ExtLen) != 8 {
			return api.NewProtocolError("expected 8-byte extended length")
		}
	default:
		return api.NewProtocolError("payload length field out of 7-bit range")
	}

	if f.Masked == Masked {
		if len(f.MaskKey) != 4 {
			return api.NewProtocolError("masked frame missing 4-byte masking key")
		}
	} else if len(f.MaskKey) != 0 {
		return api.NewProtocolError("unmasked frame carries a masking key")
	}

	if uint64(len(f.Payload)) != f.ExactPayloadLength() {
		return api.NewProtocolError("payload length mismatch").
			WithContext("declared", f.ExactPayloadLength()).
			WithContext("actual", len(f.Payload))
	}

	return nil
}

// Unmask XORs the payload with the masking key (spec §4.5), then clears
// Masked and drops MaskKey (sets it to nil). It is idempotent: calling
// it again on an already-unmasked frame is a no-op rather than
// re-masking.
func (f *Frame) Unmask() {
	if f.Masked != Masked {
		return
	}
	unmaskInPlace(f.Payload, f.MaskKey)
	f.Masked = Unmasked
	f.MaskKey = nil
}
