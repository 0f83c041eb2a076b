package dispatch

import (
	"sync"
	"testing"
	"time"
)

func TestQueue_RunsInFIFOOrder(t *testing.T) {
	d := New()
	defer d.Close()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(5)

	for i := 0; i < 5; i++ {
		i := i
		d.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})
	}

	if !waitTimeout(&wg, time.Second) {
		t.Fatal("timed out waiting for tasks to drain")
	}

	mu.Lock()
	defer mu.Unlock()
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want strictly ascending", order)
		}
	}
}

func TestQueue_SubmitRunsOnDrainGoroutine(t *testing.T) {
	d := New()
	defer d.Close()

	ran := make(chan struct{})
	d.Submit(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task never ran after Submit")
	}
}

func TestQueue_CloseDrainsPendingThenStops(t *testing.T) {
	d := New()

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		d.Submit(func() { wg.Done() })
	}
	d.Close()

	if !waitTimeout(&wg, time.Second) {
		t.Fatal("pending tasks were not drained before Close stopped the worker")
	}

	// Submitting after Close is a silent no-op; the task must never run.
	ran := false
	d.Submit(func() { ran = true })
	time.Sleep(10 * time.Millisecond)
	if ran {
		t.Fatal("task submitted after Close must not run")
	}
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
