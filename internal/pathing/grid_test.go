package pathing

import (
	"errors"
	"testing"
)

func TestNewGrid_RejectsBadDimensions(t *testing.T) {
	if _, err := NewGrid[int](0, 5); !errors.Is(err, ErrBadDimensions) {
		t.Fatalf("expected ErrBadDimensions for width 0, got %v", err)
	}
	if _, err := NewGrid[int](5, -1); !errors.Is(err, ErrBadDimensions) {
		t.Fatalf("expected ErrBadDimensions for height -1, got %v", err)
	}
}

func TestGrid_SetGet(t *testing.T) {
	g, err := NewGrid[int](4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if !g.Set(3, 2, 42) {
		t.Fatal("Set inside bounds should succeed")
	}
	v, ok := g.Get(3, 2)
	if !ok || v != 42 {
		t.Fatalf("expected (42,true), got (%d,%v)", v, ok)
	}
	// Unset cells read as the zero value.
	v, ok = g.Get(0, 0)
	if !ok || v != 0 {
		t.Fatalf("expected (0,true), got (%d,%v)", v, ok)
	}
}

func TestGrid_OutOfBounds(t *testing.T) {
	g, _ := NewGrid[int](4, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if _, ok := g.Get(p[0], p[1]); ok {
			t.Fatalf("Get(%d,%d) should report out of bounds", p[0], p[1])
		}
		if g.Set(p[0], p[1], 1) {
			t.Fatalf("Set(%d,%d) should report out of bounds", p[0], p[1])
		}
	}
}

func TestGrid_Size(t *testing.T) {
	g, _ := NewGrid[string](7, 9)
	w, h := g.Size()
	if w != 7 || h != 9 {
		t.Fatalf("expected size (7,9), got (%d,%d)", w, h)
	}
}
