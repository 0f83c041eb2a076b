package frame

import (
	"bytes"
	"errors"
	"testing"

	"github.com/momentics/wscodec/api"
	"github.com/momentics/wscodec/fake"
)

func sinksOf(sinks ...*fake.Sink) []api.Sink {
	out := make([]api.Sink, len(sinks))
	for i, s := range sinks {
		out[i] = s
	}
	return out
}

func TestFanOutSink_WritesToAll(t *testing.T) {
	s1, s2, s3 := fake.NewSink(), fake.NewSink(), fake.NewSink()
	out := FanOutSink{Sinks: sinksOf(s1, s2, s3)}

	payload := []byte("broadcast me")
	if err := out.Write(payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range []*fake.Sink{s1, s2, s3} {
		if !bytes.Equal(s.Bytes(), payload) {
			t.Fatalf("sink %d: got %q, want %q", i, s.Bytes(), payload)
		}
	}
}

func TestFanOutSink_AggregatesErrors(t *testing.T) {
	s1, s2 := fake.NewSink(), fake.NewSink()
	s1.FailWith(errors.New("peer 1 gone"))
	out := FanOutSink{Sinks: sinksOf(s1, s2)}

	err := out.Write([]byte("x"))
	if err == nil {
		t.Fatal("expected an aggregated error")
	}
	if !bytes.Equal(s2.Bytes(), []byte("x")) {
		t.Fatalf("healthy sink did not receive the write: %q", s2.Bytes())
	}
}
