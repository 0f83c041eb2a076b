// Package frame
// Author: momentics <momentics@gmail.com>
//
// Async: the callback-driven, completion-continuation frame reader.

package frame

import (
	"context"

	"go.uber.org/zap"

	"github.com/momentics/wscodec/api"
	"github.com/momentics/wscodec/internal/dispatch"
)

// asyncState names the callback-driven reader's position in the
// four-stage pipeline (spec §9: "model this as a small state machine
// with states NeedHeader, NeedExtLen, NeedMask, NeedPayload, Done,
// Failed").
type asyncState int

const (
	stateNeedHeader asyncState = iota
	stateNeedExtLen
	stateNeedMask
	stateNeedPayload
	stateDone
	stateFailed
)

// AsyncReader drives the same four stages as Reader, but via chained
// completion continuations over an api.Source (spec §5 "Completion-
// callback" mode). The four stages are chained so the next begins
// only after the previous completes successfully; exactly one of
// onOK/onErr is ever invoked for a whole-frame read, and every codec
// or source failure is routed through onErr (resolving spec §9's
// "raises inside callbacks" open question in favor of a single
// continuation discipline). A panic raised by the caller's own onOK or
// onErr is recovered and logged; it does not trigger a second callback.
type AsyncReader struct {
	Source api.Source
	Limits Limits
	Logger *zap.Logger

	queue *dispatch.Queue
}

// NewAsyncReader constructs an AsyncReader with DefaultLimits and a
// no-op logger. Call SetLogger to attach diagnostics.
func NewAsyncReader(src api.Source) *AsyncReader {
	return &AsyncReader{
		Source: src,
		Limits: DefaultLimits,
		Logger: zap.NewNop(),
		queue:  dispatch.New(),
	}
}

// SetLogger attaches a structured logger for stage-level tracing.
func (r *AsyncReader) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.Logger = l
}

// Close releases the reader's continuation dispatcher. Safe to call
// once the reader is no longer in use.
func (r *AsyncReader) Close() {
	r.queue.Close()
}

type asyncCall struct {
	reader  *AsyncReader
	frame   *Frame
	state   asyncState
	onOK    func(*Frame)
	onErr   func(*api.Error)
	ctx     context.Context
}

// ReadFrame begins a staged, callback-driven read of one frame.
func (r *AsyncReader) ReadFrame(ctx context.Context, onOK func(*Frame), onErr func(*api.Error)) {
	c := &asyncCall{reader: r, frame: &Frame{}, state: stateNeedHeader, onOK: onOK, onErr: onErr, ctx: ctx}
	c.driveHeader()
}

// finish guarantees exactly one of onOK/onErr ever fires for this
// call, and always via the dispatch queue so a recovered panic in a
// caller's onOK cannot unwind into this package's own stack.
func (c *asyncCall) finish(f *Frame, aerr *api.Error) {
	c.reader.queue.Submit(func() {
		defer func() {
			if p := recover(); p != nil {
				c.reader.Logger.Error("frame: panic in completion callback", zap.Any("panic", p))
			}
		}()
		if aerr != nil {
			c.state = stateFailed
			if c.onErr != nil {
				c.onErr(aerr)
			}
			return
		}
		c.state = stateDone
		if c.onOK != nil {
			c.onOK(f)
		}
	})
}

func (c *asyncCall) driveHeader() {
	c.reader.Logger.Debug("frame: stage", zap.String("state", "NeedHeader"))
	c.reader.Source.ReadExactAsync(c.ctx, 2, func(b []byte) {
		if len(b) != 2 {
			c.finish(nil, api.ErrIncompleteHeader)
			return
		}
		f, aerr := decodeHeader([2]byte{b[0], b[1]})
		if aerr != nil {
			c.finish(nil, aerr)
			return
		}
		c.frame = f
		c.state = stateNeedExtLen
		c.driveExtLen()
	}, func(err error) {
		c.finish(nil, shortRead(err, api.ErrIncompleteHeader))
	})
}

func (c *asyncCall) driveExtLen() {
	w := extLenWidth(c.frame.PayloadLen7)
	if w == 0 {
		c.state = stateNeedMask
		c.driveMask()
		return
	}
	c.reader.Logger.Debug("frame: stage", zap.String("state", "NeedExtLen"))
	c.reader.Source.ReadExactAsync(c.ctx, w, func(b []byte) {
		if len(b) != w {
			c.finish(nil, api.ErrIncompleteFrame)
			return
		}
		c.frame.ExtLen = b
		c.state = stateNeedMask
		c.driveMask()
	}, func(err error) {
		c.finish(nil, shortRead(err, api.ErrIncompleteFrame))
	})
}

func (c *asyncCall) driveMask() {
	if c.frame.Masked != Masked {
		c.state = stateNeedPayload
		c.drivePayload()
		return
	}
	c.reader.Logger.Debug("frame: stage", zap.String("state", "NeedMask"))
	c.reader.Source.ReadExactAsync(c.ctx, 4, func(b []byte) {
		if len(b) != 4 {
			c.finish(nil, api.ErrIncompleteFrame)
			return
		}
		c.frame.MaskKey = b
		c.state = stateNeedPayload
		c.drivePayload()
	}, func(err error) {
		c.finish(nil, shortRead(err, api.ErrIncompleteFrame))
	})
}

func (c *asyncCall) drivePayload() {
	length := c.frame.ExactPayloadLength()

	if c.frame.Opcode.IsControl() && length > MaxControlPayloadLen {
		c.finish(nil, api.NewProtocolError("control frame payload length exceeds 125 bytes"))
		return
	}

	if length == 0 {
		c.finish(c.frame, nil)
		return
	}
	if length > c.reader.Limits.payloadMax() {
		c.finish(nil, api.NewMessageTooBigError("declared payload length exceeds configured maximum").
			WithContext("declared", length).
			WithContext("max", c.reader.Limits.payloadMax()))
		return
	}

	c.reader.Logger.Debug("frame: stage", zap.String("state", "NeedPayload"), zap.Uint64("length", length))

	onOK := func(b []byte) {
		if uint64(len(b)) != length {
			c.finish(nil, api.ErrIncompleteFrame)
			return
		}
		c.frame.Payload = b
		c.finish(c.frame, nil)
	}
	onErr := func(err error) {
		c.finish(nil, shortRead(err, api.ErrIncompleteFrame))
	}

	if c.frame.PayloadLen7 < 127 {
		c.reader.Source.ReadExactAsync(c.ctx, int(length), onOK, onErr)
		return
	}
	c.reader.Source.ReadExactChunkedAsync(c.ctx, int(length), c.reader.Limits.chunkSize(), nil, onOK, onErr)
}
