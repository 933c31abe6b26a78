package histodiff

import (
	"reflect"
	"testing"
)

func TestListHandleZeroValueIsEmpty(t *testing.T) {
	var h ListHandle
	if h.Len() != 0 {
		t.Errorf("zero ListHandle.Len() = %d, want 0", h.Len())
	}
	p := NewListPool(0)
	if got := h.Slice(p); len(got) != 0 {
		t.Errorf("zero ListHandle.Slice() = %v, want empty", got)
	}
}

func TestListHandlePushGrowsAcrossSizeClasses(t *testing.T) {
	p := NewListPool(0)
	var h ListHandle
	var want []uint32
	for i := uint32(0); i < 200; i++ {
		h = h.Push(p, i)
		want = append(want, i)
		if !reflect.DeepEqual(h.Slice(p), want) {
			t.Fatalf("after pushing %d values, Slice() = %v, want %v", i+1, h.Slice(p), want)
		}
	}
	if h.Len() != 200 {
		t.Errorf("Len() = %d, want 200", h.Len())
	}
}

func TestListPoolClearReusesArenaCapacity(t *testing.T) {
	p := NewListPool(4)
	var h ListHandle
	h = h.Push(p, 1)
	h = h.Push(p, 2)
	before := cap(p.arena)

	p.Clear()
	if len(p.arena) != 0 {
		t.Fatalf("Clear() left len(arena) = %d, want 0", len(p.arena))
	}
	if cap(p.arena) != before {
		t.Errorf("Clear() changed arena capacity: %d -> %d", before, cap(p.arena))
	}
}

func TestMultipleHandlesShareOnePoolIndependently(t *testing.T) {
	p := NewListPool(0)
	var a, b ListHandle
	a = a.Push(p, 10)
	b = b.Push(p, 20)
	a = a.Push(p, 11)

	if !reflect.DeepEqual(a.Slice(p), []uint32{10, 11}) {
		t.Errorf("a.Slice() = %v, want [10 11]", a.Slice(p))
	}
	if !reflect.DeepEqual(b.Slice(p), []uint32{20}) {
		t.Errorf("b.Slice() = %v, want [20]", b.Slice(p))
	}
}
