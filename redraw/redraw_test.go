package redraw

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestBurstCollapsesToOneRender(t *testing.T) {
	s := NewScheduler(20 * time.Millisecond)

	var renders int64
	var last int64
	for i := 1; i <= 10; i++ {
		n := int64(i)
		s.Request(func() {
			atomic.AddInt64(&renders, 1)
			atomic.StoreInt64(&last, n)
		})
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	if got := atomic.LoadInt64(&renders); got != 1 {
		t.Fatalf("burst produced %d renders, want 1", got)
	}
	if got := atomic.LoadInt64(&last); got != 10 {
		t.Fatalf("rendered snapshot %d, want the latest (10)", got)
	}
}

func TestQuietWindowsRenderSeparately(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)

	var renders int64
	for i := 0; i < 3; i++ {
		s.Request(func() { atomic.AddInt64(&renders, 1) })
		time.Sleep(100 * time.Millisecond)
	}

	if got := atomic.LoadInt64(&renders); got != 3 {
		t.Fatalf("separated edits produced %d renders, want 3", got)
	}
}

func TestStopDiscardsPending(t *testing.T) {
	s := NewScheduler(20 * time.Millisecond)

	var renders int64
	s.Request(func() { atomic.AddInt64(&renders, 1) })
	s.Stop()

	time.Sleep(200 * time.Millisecond)
	if got := atomic.LoadInt64(&renders); got != 0 {
		t.Fatalf("stopped scheduler still rendered %d times", got)
	}

	s.Request(func() { atomic.AddInt64(&renders, 1) })
	time.Sleep(200 * time.Millisecond)
	if got := atomic.LoadInt64(&renders); got != 0 {
		t.Fatalf("request after stop rendered %d times", got)
	}
}

func TestWindowDefault(t *testing.T) {
	if w := Window(); w != DefaultWindow {
		t.Fatalf("default window = %v, want %v", w, DefaultWindow)
	}
}

func TestWindowOverride(t *testing.T) {
	t.Setenv("PARTDRAW_DEBOUNCE_MS", "40")
	if w := Window(); w != 40*time.Millisecond {
		t.Fatalf("override window = %v, want 40ms", w)
	}
}
