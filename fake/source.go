// Package fake provides deterministic, controllable implementations of
// the api.Source/api.Sink/api.RNG contracts for tests — adapted from
// this ecosystem's fake.Transport and fake.Buffer (in-memory,
// byte-slice backed, injectable failure points), narrowed to exactly
// what the frame codec needs to borrow.
// Author: momentics <momentics@gmail.com>
package fake

import (
	"context"
	"io"
	"sync"
)

// Source is an in-memory api.Source backed by a fixed byte slice, with
// an optional failure point for simulating a short read or transport
// error mid-stream.
type Source struct {
	mu       sync.Mutex
	data     []byte
	pos      int
	failAt   int // byte offset at which FailErr is returned instead of data; -1 disables
	failErr  error
}

// NewSource wraps data for sequential consumption.
func NewSource(data []byte) *Source {
	return &Source{data: data, failAt: -1}
}

// FailAt arranges for err to be returned once the read cursor reaches
// offset, instead of any further bytes being delivered.
func (s *Source) FailAt(offset int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAt = offset
	s.failErr = err
}

// ReadExact implements api.Source.
func (s *Source) ReadExact(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readExactLocked(n)
}

func (s *Source) readExactLocked(n int) ([]byte, error) {
	if s.failAt >= 0 && s.pos+n > s.failAt {
		return nil, s.failErr
	}
	if s.pos+n > len(s.data) {
		return nil, io.ErrUnexpectedEOF
	}
	b := s.data[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}

// ReadExactChunked implements api.Source.
func (s *Source) ReadExactChunked(n, chunkSize int, onChunk func(read int)) ([]byte, error) {
	out := make([]byte, 0, n)
	remaining := n
	for remaining > 0 {
		take := chunkSize
		if take > remaining {
			take = remaining
		}
		b, err := s.ReadExact(take)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
		remaining -= take
		if onChunk != nil {
			onChunk(len(out))
		}
	}
	return out, nil
}

// ReadExactAsync implements api.Source by running synchronously and
// invoking the matching callback before returning — sufficient for
// deterministic tests, which is all this type exists for.
func (s *Source) ReadExactAsync(ctx context.Context, n int, onOK func([]byte), onErr func(error)) {
	if err := ctx.Err(); err != nil {
		onErr(err)
		return
	}
	b, err := s.ReadExact(n)
	if err != nil {
		onErr(err)
		return
	}
	onOK(b)
}

// ReadExactChunkedAsync implements api.Source synchronously, same
// rationale as ReadExactAsync.
func (s *Source) ReadExactChunkedAsync(ctx context.Context, n, chunkSize int, onChunk func(read int), onOK func([]byte), onErr func(error)) {
	if err := ctx.Err(); err != nil {
		onErr(err)
		return
	}
	b, err := s.ReadExactChunked(n, chunkSize, onChunk)
	if err != nil {
		onErr(err)
		return
	}
	onOK(b)
}

// Remaining reports how many bytes are left unconsumed.
func (s *Source) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data) - s.pos
}
