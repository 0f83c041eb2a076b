package frame

import (
	"strings"
	"testing"
)

func TestSummarize_EmptyPayload(t *testing.T) {
	f := &Frame{Fin: Final, Opcode: OpcodePing}
	out := Summarize(f)
	if !strings.Contains(out, "Payload Data: \n") {
		t.Fatalf("expected an empty payload line, got:\n%s", out)
	}
}

func TestSummarize_LongPayloadDashes(t *testing.T) {
	f := &Frame{Fin: Final, Opcode: OpcodeBinary, Payload: make([]byte, 200)}
	out := Summarize(f)
	if !strings.Contains(out, "Payload Data: ---\n") {
		t.Fatalf("expected '---' for payload > 125 bytes, got:\n%s", out)
	}
}

func TestSummarize_TextFrameDecoded(t *testing.T) {
	f := &Frame{Fin: Final, Opcode: OpcodeText, Payload: []byte("hello world")}
	out := Summarize(f)
	if !strings.Contains(out, "Payload Data: hello world\n") {
		t.Fatalf("expected decoded text payload, got:\n%s", out)
	}
}

func TestSummarize_TextFrameInvalidUTF8FallsBackEmpty(t *testing.T) {
	f := &Frame{Fin: Final, Opcode: OpcodeText, Payload: []byte{0xFF, 0xFE}}
	out := Summarize(f)
	if !strings.Contains(out, "Payload Data: \n") {
		t.Fatalf("expected an empty fallback for invalid UTF-8, got:\n%s", out)
	}
}

func TestSummarize_MaskingKeyRenderedWithSeparators(t *testing.T) {
	f := &Frame{Fin: Final, Opcode: OpcodeText, Masked: Masked, MaskKey: []byte{1, 2, 3, 4}, Payload: []byte{5, 6, 7}}
	out := Summarize(f)
	if strings.Contains(out, "Masking Key: \n") {
		t.Fatalf("expected a rendered masking key, got:\n%s", out)
	}
	if !strings.Contains(out, "Masking Key: 01:02:03:04\n") {
		t.Fatalf("unexpected masking key rendering:\n%s", out)
	}
}

func TestDump_FormatsRows(t *testing.T) {
	f := &Frame{Fin: Final, Opcode: OpcodeText, PayloadLen7: 5, Payload: []byte("Hello")}
	out := Dump(f)
	if !strings.Contains(out, "0000") {
		t.Fatalf("expected a 0000 offset row, got:\n%s", out)
	}
	if !strings.Contains(out, "10000001") {
		t.Fatalf("expected the header byte rendered in binary, got:\n%s", out)
	}
}

func TestRowLabel_ScalesWithSize(t *testing.T) {
	if got := rowLabel(0, 100); got != "0000" {
		t.Fatalf("got %q, want 0000", got)
	}
	if got := rowLabel(0, 20000); got != "0000" {
		t.Fatalf("got %q, want 0000 (4 hex digits)", got)
	}
	if got := rowLabel(0x10001, 1<<20); got != "00010001" {
		t.Fatalf("got %q, want 00010001 (8 hex digits)", got)
	}
}
