// Package api
// Author: momentics <momentics@gmail.com>
//
// Byte source/sink/RNG contracts consumed by the frame codec (spec §6).
// Kept deliberately narrow: the codec never needs more than "give me
// exactly n bytes" and "take these bytes", synchronously or via a
// completion continuation.

package api

import "context"

// Source is a blocking byte source the frame reader borrows for the
// duration of a single read. Implementations are not required to be
// safe for concurrent use by more than one reader at a time.
type Source interface {
	// ReadExact returns exactly n bytes or an error. A short read from
	// the underlying transport is reported as an error, never as a
	// shorter-than-requested slice.
	ReadExact(n int) ([]byte, error)

	// ReadExactChunked behaves like ReadExact but reads n bytes in
	// slices of at most chunkSize, invoking onChunk after each slice is
	// appended to the accumulator. onChunk may be nil. Used for large
	// payloads so no single allocation larger than chunkSize is made
	// for the read itself.
	ReadExactChunked(n, chunkSize int, onChunk func(read int)) ([]byte, error)

	// ReadExactAsync is the completion-callback counterpart to
	// ReadExact. Exactly one of onOK or onErr is invoked, once, per
	// call. Implementations may invoke the callback on any goroutine.
	ReadExactAsync(ctx context.Context, n int, onOK func([]byte), onErr func(error))

	// ReadExactChunkedAsync is the completion-callback counterpart to
	// ReadExactChunked: n bytes are read in slices of at most
	// chunkSize, onChunk fires after each slice, and exactly one of
	// onOK (with the fully accumulated bytes) or onErr fires at the
	// end. onChunk may be nil.
	ReadExactChunkedAsync(ctx context.Context, n, chunkSize int, onChunk func(read int), onOK func([]byte), onErr func(error))
}

// Sink is a byte sink the frame writer targets when serializing
// directly to a stream instead of an in-memory buffer.
type Sink interface {
	// Write writes b in full or returns an error.
	Write(b []byte) error

	// WriteChunked writes b in slices of at most chunkSize, mirroring
	// the reader's chunked strategy for symmetry (spec §4.6).
	WriteChunked(b []byte, chunkSize int) error
}

// RNG produces cryptographically strong randomness for masking keys.
// Exists as an interface so tests can inject a deterministic sequence
// (spec §9 "Global RNG").
type RNG interface {
	// Fill writes exactly len(dst) random bytes into dst.
	Fill(dst []byte)
}
