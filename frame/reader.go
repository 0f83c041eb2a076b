// Package frame
// Author: momentics <momentics@gmail.com>
//
// Reader: the synchronous, four-stage frame reader.

package frame

import "github.com/momentics/wscodec/api"

// Reader drives the four staged reads — header, extended length,
// masking key, payload — over an api.Source, synchronously (spec §5
// "Synchronous" mode). A Reader and the Source it reads from are
// assumed accessed by one logical task at a time; there is no internal
// locking.
type Reader struct {
	Source api.Source
	Limits Limits
}

// NewReader constructs a Reader with DefaultLimits.
func NewReader(src api.Source) *Reader {
	return &Reader{Source: src, Limits: DefaultLimits}
}

// ReadFrame parses exactly one frame, consuming bytes from the Source
// strictly left-to-right with no pre-fetch beyond what each stage
// requires (spec §5 ordering guarantee). On error, no Frame is
// returned and the bytes already consumed for the partial frame are
// discarded by the caller closing the Source.
func (r *Reader) ReadFrame() (*Frame, *api.Error) {
	hdr, err := r.Source.ReadExact(2)
	if err != nil {
		return nil, shortRead(err, api.ErrIncompleteHeader)
	}
	if len(hdr) != 2 {
		return nil, api.ErrIncompleteHeader
	}

	f, aerr := decodeHeader([2]byte{hdr[0], hdr[1]})
	if aerr != nil {
		return nil, aerr
	}

	if w := extLenWidth(f.PayloadLen7); w > 0 {
		ext, err := r.Source.ReadExact(w)
		if err != nil {
			return nil, shortRead(err, api.ErrIncompleteFrame)
		}
		if len(ext) != w {
			return nil, api.ErrIncompleteFrame
		}
		f.ExtLen = ext
	}

	if f.Masked == Masked {
		key, err := r.Source.ReadExact(4)
		if err != nil {
			return nil, shortRead(err, api.ErrIncompleteFrame)
		}
		if len(key) != 4 {
			return nil, api.ErrIncompleteFrame
		}
		f.MaskKey = key
	}

	length := f.ExactPayloadLength()
	if f.Opcode.IsControl() && length > MaxControlPayloadLen {
		return nil, api.NewProtocolError("control frame payload length exceeds 125 bytes")
	}

	payload, aerr := readPayload(r.Source, f.PayloadLen7, length, r.Limits)
	if aerr != nil {
		return nil, aerr
	}
	f.Payload = payload

	return f, nil
}
