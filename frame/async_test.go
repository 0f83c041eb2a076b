package frame

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/momentics/wscodec/api"
	"github.com/momentics/wscodec/fake"
)

func TestAsyncReader_S1(t *testing.T) {
	raw := []byte{0x81, 0x05, 0x48, 0x65, 0x6C, 0x6C, 0x6F}
	ar := NewAsyncReader(fake.NewSource(raw))
	defer ar.Close()

	var wg sync.WaitGroup
	wg.Add(1)

	var got *Frame
	ar.ReadFrame(context.Background(), func(f *Frame) {
		got = f
		wg.Done()
	}, func(err *api.Error) {
		t.Errorf("unexpected error: %v", err)
		wg.Done()
	})

	waitOrTimeout(t, &wg)
	if got == nil || string(got.Payload) != "Hello" {
		t.Fatalf("got %+v", got)
	}
}

func TestAsyncReader_ErrorPath(t *testing.T) {
	raw := []byte{0x89, 0x7E, 0x00, 0x7E} // S5: ping declaring too-large payload
	ar := NewAsyncReader(fake.NewSource(raw))
	defer ar.Close()

	var wg sync.WaitGroup
	wg.Add(1)

	var calledOK bool
	ar.ReadFrame(context.Background(), func(f *Frame) {
		calledOK = true
		wg.Done()
	}, func(err *api.Error) {
		wg.Done()
	})

	waitOrTimeout(t, &wg)
	if calledOK {
		t.Fatal("onOK must not be called for a protocol error")
	}
}

func TestAsyncReader_LargePayloadChunked(t *testing.T) {
	payload := make([]byte, 1<<16+100)
	for i := range payload {
		payload[i] = byte(i)
	}
	f := New(OpcodeBinary, payload, false, false, nil)
	raw := ToBytes(f)

	ar := NewAsyncReader(fake.NewSource(raw))
	ar.Limits = Limits{ChunkSize: 4096}
	defer ar.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	var got *Frame
	ar.ReadFrame(context.Background(), func(fr *Frame) {
		got = fr
		wg.Done()
	}, func(err *api.Error) {
		t.Errorf("unexpected error: %v", err)
		wg.Done()
	})

	waitOrTimeout(t, &wg)
	if got == nil || len(got.Payload) != len(payload) {
		t.Fatalf("got %v bytes, want %d", got, len(payload))
	}
}

func waitOrTimeout(t *testing.T, wg *sync.WaitGroup) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for async completion")
	}
}
