// Package frame
// Author: momentics <momentics@gmail.com>
//
// Debug: the bit-dump and labeled-summary formatters (spec §4.8).

package frame

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Dump renders the frame's on-wire bytes as a bordered bit table: a
// row counter whose width auto-scales to the frame's size, followed by
// four 8-bit binary groups per row (spec §4.8). The row counter is
// 4-digit decimal while the frame is under 10000 bytes; past that it
// switches to hex, widening from 4 to 8 to 16 digits as the frame
// grows, so the column never has to be guessed from context.
func Dump(f *Frame) string {
	raw := ToBytes(f)
	total := len(raw)

	var b strings.Builder
	border := "+------+----------+----------+----------+----------+\n"
	b.WriteString(border)
	for off := 0; off < total; off += 4 {
		row := raw[off:minInt(off+4, total)]
		b.WriteString("| ")
		b.WriteString(rowLabel(off, total))
		b.WriteString(" |")
		for i := 0; i < 4; i++ {
			if i < len(row) {
				fmt.Fprintf(&b, " %08b |", row[i])
			} else {
				b.WriteString("          |")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(border)
	return b.String()
}

func rowLabel(offset, total int) string {
	if total < 10000 {
		return fmt.Sprintf("%04d", offset)
	}
	width := 4
	switch {
	case total > 0xFFFFFFFF:
		width = 16
	case total > 0xFFFF:
		width = 8
	}
	return fmt.Sprintf("%0*X", width, offset)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Summarize renders labeled lines describing the frame's fields, for
// tracing (spec §4.8). Payload rendering: empty when the payload is
// empty, "---" when it exceeds 125 bytes, UTF-8-decoded when the frame
// is a final, unmasked, uncompressed text frame, and the payload's own
// string form otherwise. A UTF-8 decode failure degrades to an empty
// rendering rather than propagating (spec §7) — Summarize never
// returns an error.
func Summarize(f *Frame) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FIN: %s\n", f.Fin)
	fmt.Fprintf(&b, "RSV1: %s\n", f.Rsv1)
	fmt.Fprintf(&b, "RSV2: %s\n", f.Rsv2)
	fmt.Fprintf(&b, "RSV3: %s\n", f.Rsv3)
	fmt.Fprintf(&b, "Opcode: %s\n", f.Opcode)
	fmt.Fprintf(&b, "MASK: %s\n", f.Masked)
	fmt.Fprintf(&b, "Payload Length: %d\n", f.PayloadLen7)
	fmt.Fprintf(&b, "Extended Payload Length: %s\n", extLenHex(f.ExtLen))
	fmt.Fprintf(&b, "Masking Key: %s\n", maskKeyHex(f.MaskKey))
	fmt.Fprintf(&b, "Payload Data: %s\n", payloadRendering(f))
	return b.String()
}

func extLenHex(ext []byte) string {
	if len(ext) == 0 {
		return ""
	}
	parts := make([]string, len(ext))
	for i, bb := range ext {
		parts[i] = fmt.Sprintf("%02X", bb)
	}
	return strings.Join(parts, " ")
}

func maskKeyHex(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	parts := make([]string, len(key))
	for i, bb := range key {
		parts[i] = fmt.Sprintf("%02X", bb)
	}
	return strings.Join(parts, ":")
}

func payloadRendering(f *Frame) string {
	n := len(f.Payload)
	if n == 0 {
		return ""
	}
	if n > MaxControlPayloadLen {
		return "---"
	}
	isText := f.Fin == Final && f.Masked == Unmasked && f.Rsv1 == Off && f.Opcode == OpcodeText
	if isText {
		if utf8.Valid(f.Payload) {
			return string(f.Payload)
		}
		return ""
	}
	return string(f.Payload)
}
