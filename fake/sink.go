// Package fake
// Author: momentics <momentics@gmail.com>
//
// Sink: an in-memory, assertable api.Sink double.

package fake

import "sync"

// Sink is an in-memory api.Sink that accumulates everything written to
// it, for assertions in tests.
type Sink struct {
	mu      sync.Mutex
	buf     []byte
	failErr error
}

// NewSink constructs an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// FailWith makes every subsequent Write/WriteChunked call return err.
func (s *Sink) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

// Write implements api.Sink.
func (s *Sink) Write(b []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	s.buf = append(s.buf, b...)
	return nil
}

// WriteChunked implements api.Sink by writing b in chunkSize slices.
func (s *Sink) WriteChunked(b []byte, chunkSize int) error {
	for off := 0; off < len(b); off += chunkSize {
		end := off + chunkSize
		if end > len(b) {
			end = len(b)
		}
		if err := s.Write(b[off:end]); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns everything written so far.
func (s *Sink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}
