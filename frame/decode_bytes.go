// Package frame
// Author: momentics <momentics@gmail.com>
//
// DecodeBytes: the buffer-oriented "incomplete, not broken" decoder.

package frame

import "github.com/momentics/wscodec/api"

// DecodeFrameFromBytes parses a frame out of an in-memory buffer
// instead of an api.Source. Unlike Reader.ReadFrame, a short buffer is
// not an error: it returns (nil, 0, nil) to mean "not enough bytes
// yet", the shape a length-prefixed reassembly buffer needs to decide
// whether to wait for more bytes before trying again. A genuine
// protocol violation still returns a non-nil *api.Error.
//
// On success it returns the decoded frame and the number of bytes of
// raw that the frame consumed.
func DecodeFrameFromBytes(raw []byte, limits Limits) (*Frame, int, *api.Error) {
	if len(raw) < 2 {
		return nil, 0, nil
	}

	f, aerr := decodeHeader([2]byte{raw[0], raw[1]})
	if aerr != nil {
		return nil, 0, aerr
	}
	offset := 2

	w := extLenWidth(f.PayloadLen7)
	if len(raw) < offset+w {
		return nil, 0, nil
	}
	if w > 0 {
		f.ExtLen = append([]byte(nil), raw[offset:offset+w]...)
		offset += w
	}

	if f.Masked == Masked {
		if len(raw) < offset+4 {
			return nil, 0, nil
		}
		f.MaskKey = append([]byte(nil), raw[offset:offset+4]...)
		offset += 4
	}

	length := f.ExactPayloadLength()
	if f.Opcode.IsControl() && length > MaxControlPayloadLen {
		return nil, 0, api.NewProtocolError("control frame payload length exceeds 125 bytes")
	}
	if length > limits.payloadMax() {
		return nil, 0, api.NewMessageTooBigError("declared payload length exceeds configured maximum").
			WithContext("declared", length).
			WithContext("max", limits.payloadMax())
	}

	total := offset + int(length)
	if len(raw) < total {
		return nil, 0, nil
	}

	// Mirrors Reader.ReadFrame: the payload is returned exactly as it
	// appeared on the wire. Masked frames are unmasked by an explicit
	// call to Frame.Unmask, never implicitly here.
	payload := make([]byte, length)
	copy(payload, raw[offset:total])
	f.Payload = payload

	return f, total, nil
}
