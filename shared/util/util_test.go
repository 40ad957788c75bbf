package util

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGridCoordLess(t *testing.T) {
	tests := []struct {
		a, b GridCoord
		want bool
	}{
		{NewGridCoord(0, 0, 0), NewGridCoord(1, 0, 0), true},
		{NewGridCoord(5, 0, 0), NewGridCoord(0, 0, 1), true},
		{NewGridCoord(5, 0, 5), NewGridCoord(0, 1, 0), true},
		{NewGridCoord(0, 1, 0), NewGridCoord(5, 0, 5), false},
		{NewGridCoord(2, 2, 2), NewGridCoord(2, 2, 2), false},
	}

	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGridCoordWorldPos(t *testing.T) {
	got := NewGridCoord(2, -1, 3).WorldPos(32)
	want := mgl32.Vec3{64, -32, 96}
	if got != want {
		t.Errorf("WorldPos(32) = %v, want %v", got, want)
	}
	if s := NewGridCoord(2, -1, 3).String(); s != "(2, -1, 3)" {
		t.Errorf("String() = %q", s)
	}
}

func TestClampAbsLerp(t *testing.T) {
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5, 0, 1) = %v, want 1", got)
	}
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5, 0, 1) = %v, want 0", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25, 0, 1) = %v, want 0.25", got)
	}
	if got := Abs(-2); got != 2 {
		t.Errorf("Abs(-2) = %v, want 2", got)
	}
	if got := Lerp(1, 0, 0.25); got != 0.75 {
		t.Errorf("Lerp(1, 0, 0.25) = %v, want 0.75", got)
	}
}

func TestThreadSafeQueueDrain(t *testing.T) {
	q := NewThreadSafeQueue[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q.Push(i)
		}(i)
	}
	wg.Wait()

	if q.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", q.Len())
	}
	items := q.Drain()
	if len(items) != 8 {
		t.Errorf("Drain() returned %d items, want 8", len(items))
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Error("queue not empty after Drain()")
	}
}
