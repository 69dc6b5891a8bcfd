package mainloop

import (
	"testing"
	"time"
)

func TestFrameThrottle(t *testing.T) {
	f := NewFrameThrottle(10)
	t0 := time.Unix(100, 0)

	if !f.Ready(t0) {
		t.Fatalf("expected first frame to be ready")
	}
	if f.Ready(t0.Add(50 * time.Millisecond)) {
		t.Fatalf("expected frame inside interval to be skipped")
	}
	// 130ms late frame: aligned back to t0+100ms.
	if !f.Ready(t0.Add(130 * time.Millisecond)) {
		t.Fatalf("expected frame after interval to be ready")
	}
	if !f.Ready(t0.Add(200 * time.Millisecond)) {
		t.Fatalf("expected aligned frame at 200ms to be ready")
	}
}

func TestFrameThrottleDefaultFPS(t *testing.T) {
	f := NewFrameThrottle(0)
	if f.Interval() != time.Second/DefaultFPS {
		t.Fatalf("expected default interval, got %s", f.Interval())
	}
}

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()
	var order []int
	q.Post(func() { order = append(order, 1) })
	q.Post(func() {
		order = append(order, 2)
		q.Post(func() { order = append(order, 3) })
	})
	q.Post(nil)

	if n := q.Drain(); n != 2 {
		t.Fatalf("expected 2 tasks, got %d", n)
	}
	if q.Len() != 1 {
		t.Fatalf("expected task posted during drain to wait, got %d", q.Len())
	}
	q.Drain()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("unexpected order %v", order)
	}
}
