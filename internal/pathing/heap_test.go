package pathing

import (
	"math/rand"
	"testing"
)

func TestHeap_PopOrdersByScore(t *testing.T) {
	h := NewHeap[string]()
	h.Push("c", 3)
	h.Push("a", 1)
	h.Push("d", 4)
	h.Push("b", 2)

	want := []string{"a", "b", "c", "d"}
	for _, w := range want {
		got, ok := h.Pop()
		if !ok || got != w {
			t.Fatalf("expected pop %q, got (%q,%v)", w, got, ok)
		}
	}
	if h.Len() != 0 {
		t.Fatalf("expected empty heap, len=%d", h.Len())
	}
}

func TestHeap_PopEmpty(t *testing.T) {
	h := NewHeap[int]()
	if v, ok := h.Pop(); ok {
		t.Fatalf("pop on empty heap should fail, got %d", v)
	}
}

func TestHeap_RescoreDecreaseKey(t *testing.T) {
	h := NewHeap[string]()
	h.Push("a", 10)
	h.Push("b", 20)
	h.Push("c", 30)

	if !h.Rescore("c", 5) {
		t.Fatal("rescore of queued item should succeed")
	}
	got, _ := h.Pop()
	if got != "c" {
		t.Fatalf("expected rescored item first, got %q", got)
	}
}

func TestHeap_RescoreIncrease(t *testing.T) {
	h := NewHeap[string]()
	h.Push("a", 1)
	h.Push("b", 2)
	h.Rescore("a", 9)
	got, _ := h.Pop()
	if got != "b" {
		t.Fatalf("expected b after raising a's score, got %q", got)
	}
}

func TestHeap_RescoreAbsent(t *testing.T) {
	h := NewHeap[string]()
	h.Push("a", 1)
	if h.Rescore("zzz", 0) {
		t.Fatal("rescore of absent item should report false")
	}
}

func TestHeap_PushDuplicateRescores(t *testing.T) {
	h := NewHeap[string]()
	h.Push("a", 10)
	h.Push("b", 5)
	h.Push("a", 1) // should rescore, not duplicate
	if h.Len() != 2 {
		t.Fatalf("expected len 2 after duplicate push, got %d", h.Len())
	}
	got, _ := h.Pop()
	if got != "a" {
		t.Fatalf("expected a first after duplicate push with lower score, got %q", got)
	}
}

func TestHeap_Contains(t *testing.T) {
	h := NewHeap[int]()
	h.Push(7, 1)
	if !h.Contains(7) {
		t.Fatal("expected Contains(7) true")
	}
	if h.Contains(8) {
		t.Fatal("expected Contains(8) false")
	}
	h.Pop()
	if h.Contains(7) {
		t.Fatal("expected Contains(7) false after pop")
	}
}

func TestHeap_RandomizedHeapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := NewHeap[int]()
	scores := make(map[int]float64)

	for i := 0; i < 500; i++ {
		s := rng.Float64() * 100
		h.Push(i, s)
		scores[i] = s
	}
	// Rescore a random third of them.
	for i := 0; i < 500; i += 3 {
		s := rng.Float64() * 100
		h.Rescore(i, s)
		scores[i] = s
	}

	prev := -1.0
	for h.Len() > 0 {
		item, ok := h.Pop()
		if !ok {
			t.Fatal("pop failed on non-empty heap")
		}
		s := scores[item]
		if s < prev {
			t.Fatalf("pop order violated: %f after %f", s, prev)
		}
		prev = s
	}
}
