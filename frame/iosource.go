// Package frame
// Author: momentics <momentics@gmail.com>
//
// IOSource: adapts a plain io.Reader/io.Writer to api.Source/api.Sink.

package frame

import (
	"context"
	"io"
)

// IOSource adapts an io.Reader (typically a net.Conn or bufio.Reader
// wrapping one) to api.Source, the way wmdanor/websocket's frame
// reader in this corpus takes a *bufio.Reader directly. The async
// methods run the blocking read on a separate goroutine. They do not
// consult ctx: a cancellation neither interrupts the read nor
// suppresses its callback, which fires once the read completes or
// fails.
type IOSource struct {
	R io.Reader
}

// NewIOSource wraps r.
func NewIOSource(r io.Reader) *IOSource {
	return &IOSource{R: r}
}

// ReadExact implements api.Source.
func (s *IOSource) ReadExact(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(s.R, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadExactChunked implements api.Source.
func (s *IOSource) ReadExactChunked(n, chunkSize int, onChunk func(read int)) ([]byte, error) {
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

// ReadExactAsync implements api.Source by running the blocking read on
// its own goroutine.
func (s *IOSource) ReadExactAsync(ctx context.Context, n int, onOK func([]byte), onErr func(error)) {
	go func() {
		b, err := s.ReadExact(n)
		if err != nil {
			onErr(err)
			return
		}
		onOK(b)
	}()
}

// ReadExactChunkedAsync implements api.Source, same rationale as
// ReadExactAsync.
func (s *IOSource) ReadExactChunkedAsync(ctx context.Context, n, chunkSize int, onChunk func(read int), onOK func([]byte), onErr func(error)) {
	go func() {
		b, err := s.ReadExactChunked(n, chunkSize, onChunk)
		if err != nil {
			onErr(err)
			return
		}
		onOK(b)
	}()
}

// IOSink adapts an io.Writer to api.Sink.
type IOSink struct {
	W io.Writer
}

// NewIOSink wraps w.
func NewIOSink(w io.Writer) *IOSink {
	return &IOSink{W: w}
}

// Write implements api.Sink.
func (s *IOSink) Write(b []byte) error {
	_, err := s.W.Write(b)
	return err
}

// WriteChunked implements api.Sink.
func (s *IOSink) WriteChunked(b []byte, chunkSize int) error {
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
