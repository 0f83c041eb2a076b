// Package frame
// Author: momentics <momentics@gmail.com>
//
// Header: the 2-byte fixed header's decode/encode.

package frame

import "github.com/momentics/wscodec/api"

// decodeHeader parses the two mandatory header bytes (spec §4.1) and
// returns a partially populated Frame with Fin, Rsv1-3, Opcode, Masked,
// and PayloadLen7 set. Callers are responsible for the
// IncompleteHeader case (fewer than 2 bytes available); this function
// assumes exactly 2 bytes were supplied.
//
// Bit layout, byte 0 MSB→LSB: fin(1) rsv1(1) rsv2(1) rsv3(1) opcode(4).
// Byte 1: masked(1) payload_length_7(7).
func decodeHeader(b [2]byte) (*Frame, *api.Error) {
	b0, b1 := b[0], b[1]

	f := &Frame{
		Fin:         FinBit(b0 >> 7 & 1),
		Rsv1:        ReservedBit(b0 >> 6 & 1),
		Rsv2:        ReservedBit(b0 >> 5 & 1),
		Rsv3:        ReservedBit(b0 >> 4 & 1),
		Opcode:      Opcode(b0 & 0x0F),
		Masked:      MaskBit(b1 >> 7 & 1),
		PayloadLen7: b1 & 0x7F,
	}

	if !f.Opcode.IsSupported() {
		return nil, api.NewProtocolError("unsupported opcode").WithContext("opcode", uint8(f.Opcode))
	}

	if f.Rsv1 == On && !f.Opcode.AllowsRSV1() {
		return nil, api.NewProtocolError("RSV1 set on an opcode other than Text or Binary")
	}

	if f.Opcode.IsControl() {
		if f.Fin != Final {
			return nil, api.NewProtocolError("control frame fragmented")
		}
		if f.PayloadLen7 > MaxControlPayloadLen {
			return nil, api.NewProtocolError("control frame payload length exceeds 125 bytes")
		}
	}

	return f, nil
}

// encodeHeader composes the two header bytes in the exact MSB-first
// order decodeHeader expects, for use by the serializer (spec §4.6).
func encodeHeader(f *Frame) [2]byte {
	var b0, b1 byte
	b0 |= byte(f.Fin) << 7
	b0 |= byte(f.Rsv1) << 6
	b0 |= byte(f.Rsv2) << 5
	b0 |= byte(f.Rsv3) << 4
	b0 |= byte(f.Opcode) & 0x0F

	b1 |= byte(f.Masked) << 7
	b1 |= f.PayloadLen7 & 0x7F

	return [2]byte{b0, b1}
}
