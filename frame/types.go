// Package frame implements the WebSocket (RFC 6455) frame codec: header
// decoding, extended-length and masking-key decoding, chunked payload
// acquisition, masking/unmasking, serialization, and debug formatting.
// Author: momentics <momentics@gmail.com>
//
// Transport, the HTTP upgrade handshake, message reassembly across
// continuation frames, permessage-deflate, and the connection state
// machine are explicitly out of scope; those collaborators consume this
// package through the api.Source/api.Sink/api.RNG contracts.
package frame

import "fmt"

// FinBit is the one-bit FIN field: whether this is the final fragment
// of a message.
type FinBit uint8

const (
	More  FinBit = 0
	Final FinBit = 1
)

func (f FinBit) String() string {
	if f == Final {
		return "Final"
	}
	return "More"
}

// ReservedBit is one of RSV1/RSV2/RSV3. RSV1 doubles as the
// permessage-deflate "compressed" marker on data frames.
type ReservedBit uint8

const (
	Off ReservedBit = 0
	On  ReservedBit = 1
)

func (r ReservedBit) String() string {
	if r == On {
		return "On"
	}
	return "Off"
}

// MaskBit is the one-bit MASK field: whether a masking key follows the
// length field and the payload is XOR-masked.
type MaskBit uint8

const (
	Unmasked MaskBit = 0
	Masked   MaskBit = 1
)

func (m MaskBit) String() string {
	if m == Masked {
		return "Masked"
	}
	return "Unmasked"
}

// Opcode is the 4-bit frame-kind tag. Only the six RFC 6455 opcodes
// this codec supports are named; any other nibble value is rejected by
// the header decoder with a ProtocolError.
type Opcode uint8

const (
	OpcodeContinuation Opcode = 0x0
	OpcodeText         Opcode = 0x1
	OpcodeBinary       Opcode = 0x2
	OpcodeClose        Opcode = 0x8
	OpcodePing         Opcode = 0x9
	OpcodePong         Opcode = 0xA
)

// IsSupported reports whether the opcode is one of the six values this
// codec understands (spec §3 invariant: opcode ∈ the six supported
// values).
func (o Opcode) IsSupported() bool {
	switch o {
	case OpcodeContinuation, OpcodeText, OpcodeBinary, OpcodeClose, OpcodePing, OpcodePong:
		return true
	default:
		return false
	}
}

// IsControl reports whether o is a control opcode (Close, Ping, Pong).
// Control frames must be unfragmented and carry at most 125 bytes.
func (o Opcode) IsControl() bool {
	switch o {
	case OpcodeClose, OpcodePing, OpcodePong:
		return true
	default:
		return false
	}
}

// IsData reports whether o is a data opcode (Continuation, Text,
// Binary).
func (o Opcode) IsData() bool {
	return o == OpcodeContinuation || o == OpcodeText || o == OpcodeBinary
}

// AllowsRSV1 reports whether o may carry the RSV1/compression bit
// (spec §3 invariant: "if rsv1 == On: opcode ∈ {Text, Binary}"). Unlike
// IsData, this excludes Continuation — RFC 6455 sets the
// permessage-deflate bit only on the first frame of a fragmented
// message, never on its continuations.
func (o Opcode) AllowsRSV1() bool {
	return o == OpcodeText || o == OpcodeBinary
}

func (o Opcode) String() string {
	switch o {
	case OpcodeContinuation:
		return "Continuation"
	case OpcodeText:
		return "Text"
	case OpcodeBinary:
		return "Binary"
	case OpcodeClose:
		return "Close"
	case OpcodePing:
		return "Ping"
	case OpcodePong:
		return "Pong"
	default:
		return fmt.Sprintf("Unsupported(0x%X)", uint8(o))
	}
}

// PayloadBuffer wraps a frame's payload bytes. It exists so ownership
// is explicit: a Frame exclusively owns the buffer behind it, and a
// caller that wants to retain data past the frame's lifetime must Copy
// it out rather than alias the slice. The synchronous Reader's payload
// paths (readPayload, readPayloadChunked) hand their result through one
// before it becomes a Frame's Payload; AsyncReader and
// DecodeFrameFromBytes assign the payload slice directly.
type PayloadBuffer struct {
	data []byte
}

// NewPayloadBuffer wraps b without copying; the caller transfers
// ownership of b to the returned PayloadBuffer.
func NewPayloadBuffer(b []byte) PayloadBuffer {
	return PayloadBuffer{data: b}
}

// Bytes returns the underlying slice. Callers must not retain it past
// the owning Frame's lifetime without calling Copy first.
func (p PayloadBuffer) Bytes() []byte {
	return p.data
}

// Len returns the number of bytes currently held.
func (p PayloadBuffer) Len() int {
	return len(p.data)
}

// Copy returns an independent copy of the buffer's contents.
func (p PayloadBuffer) Copy() []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}
