// Package frame
// Author: momentics <momentics@gmail.com>
//
// Payload: bounded single-shot and chunked payload acquisition.

package frame

import (
	"errors"
	"io"

	"github.com/momentics/wscodec/api"
)

// shortRead maps an underlying Source/Sink I/O failure to the codec's
// own incomplete-frame vocabulary, distinguishing "fewer bytes than
// promised" from an opaque transport failure (spec §7).
func shortRead(err error, stage *api.Error) *api.Error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return stage
	}
	return api.WrapSourceError(err)
}

// readPayload acquires the L = exact_payload_length bytes of a frame's
// payload from src (spec §4.4). It enforces limits.PayloadMax before
// reading a single byte, then picks one of two read strategies:
//
//   - payloadLen7 < 127 (L < 2^16): a single bounded read.
//   - payloadLen7 == 127 (potentially huge): a chunked read in slices
//     of limits.ChunkSize, appending into a growing buffer.
func readPayload(src api.Source, payloadLen7 byte, length uint64, limits Limits) ([]byte, *api.Error) {
	if length == 0 {
		return nil, nil
	}
	if length > limits.payloadMax() {
		return nil, api.NewMessageTooBigError("declared payload length exceeds configured maximum").
			WithContext("declared", length).
			WithContext("max", limits.payloadMax())
	}

	if payloadLen7 < 127 {
		b, err := src.ReadExact(int(length))
		if err != nil {
			return nil, shortRead(err, api.ErrIncompleteFrame)
		}
		buf := NewPayloadBuffer(b)
		if uint64(buf.Len()) != length {
			return nil, api.ErrIncompleteFrame
		}
		return buf.Bytes(), nil
	}

	return readPayloadChunked(src, length, limits, nil)
}

// readPayloadChunked is the explicit chunked-strategy entry point,
// used when the caller's Source prefers to stream via
// ReadExactChunked directly rather than be driven chunk-by-chunk
// (spec §4.4's rationale: caps intermediate allocation and gives
// progress points an async caller can cancel between).
func readPayloadChunked(src api.Source, length uint64, limits Limits, onProgress func(read int)) ([]byte, *api.Error) {
	if length == 0 {
		return nil, nil
	}
	if length > limits.payloadMax() {
		return nil, api.NewMessageTooBigError("declared payload length exceeds configured maximum").
			WithContext("declared", length).
			WithContext("max", limits.payloadMax())
	}
	b, err := src.ReadExactChunked(int(length), limits.chunkSize(), onProgress)
	if err != nil {
		return nil, shortRead(err, api.ErrIncompleteFrame)
	}
	buf := NewPayloadBuffer(b)
	if uint64(buf.Len()) != length {
		return nil, api.ErrIncompleteFrame
	}
	return buf.Bytes(), nil
}
