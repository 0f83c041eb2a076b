// Package frame
// Author: momentics <momentics@gmail.com>
//
// Writer: frame serialization and outbound frame construction.

package frame

import "github.com/momentics/wscodec/api"

// Writer serializes Frames to a byte buffer or, for symmetry with the
// chunked payload reader, writes them directly to an api.Sink in
// chunks (spec §4.6).
type Writer struct {
	Limits Limits
}

// NewWriter constructs a Writer with DefaultLimits.
func NewWriter() *Writer {
	return &Writer{Limits: DefaultLimits}
}

// ToBytes lays out the frame into a single buffer: the 2 header bytes,
// then ExtLen (0/2/8 bytes), then MaskKey (0/4 bytes), then Payload
// (spec §4.6). The returned slice is a fresh allocation the caller
// owns.
func ToBytes(f *Frame) []byte {
	hdr := encodeHeader(f)
	out := make([]byte, 0, f.WireLen())
	out = append(out, hdr[0], hdr[1])
	out = append(out, f.ExtLen...)
	out = append(out, f.MaskKey...)
	out = append(out, f.Payload...)
	return out
}

// WriteTo serializes f directly to sink. For payloads whose
// PayloadLen7 signals the 64-bit extended-length form, the payload is
// written in the same chunked manner ReadFrame uses, so a stream-backed
// sink never needs to buffer the whole frame either (spec §4.6).
func (w *Writer) WriteTo(sink api.Sink, f *Frame) *api.Error {
	hdr := encodeHeader(f)
	head := make([]byte, 0, 2+len(f.ExtLen)+len(f.MaskKey))
	head = append(head, hdr[0], hdr[1])
	head = append(head, f.ExtLen...)
	head = append(head, f.MaskKey...)

	if err := sink.Write(head); err != nil {
		return api.WrapSourceError(err)
	}

	if len(f.Payload) == 0 {
		return nil
	}

	if f.PayloadLen7 < 127 {
		if err := sink.Write(f.Payload); err != nil {
			return api.WrapSourceError(err)
		}
		return nil
	}

	if err := sink.WriteChunked(f.Payload, w.Limits.chunkSize()); err != nil {
		return api.WrapSourceError(err)
	}
	return nil
}

// New constructs an outbound, unfragmented Frame (Fin = Final) from an
// opcode, payload, and flags (spec §4.7). compress sets RSV1 (the
// permessage-deflate bit), but only on Text/Binary opcodes; it is
// ignored on Continuation and control opcodes, since RFC 6455 only
// ever sets the bit on the first frame of a message. When mask is
// true, a masking key is drawn from rng, the payload is masked in
// place, and Masked is set.
func New(opcode Opcode, payload []byte, compress, mask bool, rng api.RNG) *Frame {
	return NewFragment(Final, opcode, payload, compress, mask, rng)
}

// NewFragment is New's extended form: callers producing a
// multi-frame message pass fin = More for every frame but the last,
// and opcode = OpcodeContinuation for every frame but the first (spec
// §4.7 step 1).
func NewFragment(fin FinBit, opcode Opcode, payload []byte, compress, mask bool, rng api.RNG) *Frame {
	f := &Frame{
		Fin:    fin,
		Opcode: opcode,
	}

	if compress && opcode.AllowsRSV1() {
		f.Rsv1 = On
	}

	n := uint64(len(payload))
	f.PayloadLen7, f.ExtLen = splitPayloadLength(n)

	if mask {
		if rng == nil {
			rng = DefaultRNG
		}
		key := make([]byte, 4)
		rng.Fill(key)
		f.MaskKey = key
		f.Masked = Masked

		masked := make([]byte, len(payload))
		copy(masked, payload)
		unmaskInPlace(masked, key)
		f.Payload = masked
	} else {
		f.Payload = payload
	}

	return f
}
